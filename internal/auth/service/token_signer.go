package service

//go:generate mockgen -destination=../../mocks/mock_token_signer.go -package=mocks github.com/radiofy/auth-service/internal/auth/service AccessTokenIssuer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/radiofy/auth-service/internal/errors"
	authconstant "github.com/radiofy/auth-service/pkg/constant"
)

// AccessTokenIssuer is the signer surface consumed by the boundary layer.
type AccessTokenIssuer interface {
	Issue(subject string, claims map[string]interface{}, ttl time.Duration) (string, error)
	Verify(tokenString string) (string, error)
	IsValidFor(tokenString, expectedSubject string) bool
	AccessTokenTTL() time.Duration
}

// TokenSigner issues and verifies HS256 access tokens with a process-wide
// immutable key.
type TokenSigner struct {
	secret    []byte
	accessTTL time.Duration
}

func NewTokenSigner(secret string, accessMinutes int) (*TokenSigner, error) {
	if len(secret) < authconstant.MinSigningSecretBytes {
		return nil, fmt.Errorf("signing secret must be at least %d bytes, got %d",
			authconstant.MinSigningSecretBytes, len(secret))
	}
	return &TokenSigner{
		secret:    []byte(secret),
		accessTTL: time.Duration(accessMinutes) * time.Minute,
	}, nil
}

func (ts *TokenSigner) AccessTokenTTL() time.Duration {
	return ts.accessTTL
}

// Issue produces a compact signed token for the subject. Extra claims are
// merged alongside the registered subject/iat/exp claims.
func (ts *TokenSigner) Issue(subject string, claims map[string]interface{}, ttl time.Duration) (string, error) {
	now := time.Now()

	merged := jwt.MapClaims{
		"sub": subject,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(ttl)),
	}
	for k, v := range claims {
		if k == "sub" || k == "iat" || k == "exp" {
			continue
		}
		merged[k] = v
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, merged).SignedString(ts.secret)
}

// Verify parses and validates the token, returning its subject.
func (ts *TokenSigner) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrTokenUnsupportedAlg
		}
		return ts.secret, nil
	})
	if err != nil {
		return "", classifyJWTError(err)
	}
	if !token.Valid {
		return "", autherror.ErrTokenBadSignature
	}

	return claims.Subject, nil
}

// IsValidFor reports whether the token verifies, carries the expected subject
// and has an expiry strictly in the future. Parse failures never propagate.
func (ts *TokenSigner) IsValidFor(tokenString, expectedSubject string) bool {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrTokenUnsupportedAlg
		}
		return ts.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	return claims.Subject == expectedSubject &&
		claims.ExpiresAt != nil &&
		claims.ExpiresAt.After(time.Now())
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, autherror.ErrTokenUnsupportedAlg):
		return autherror.ErrTokenUnsupportedAlg
	case errors.Is(err, jwt.ErrTokenExpired):
		return autherror.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return autherror.ErrTokenBadSignature
	default:
		return autherror.ErrTokenMalformed
	}
}
