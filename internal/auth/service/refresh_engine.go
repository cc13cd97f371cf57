package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/radiofy/auth-service/internal/auth/domain"
	autherror "github.com/radiofy/auth-service/internal/errors"
	authconstant "github.com/radiofy/auth-service/pkg/constant"
)

// RefreshTokenEngine owns the rotation chains: issuance, atomic rotation,
// reuse detection and family-wide revocation. Raw secrets are high-entropy,
// so a fast SHA-256 digest is the stored representation.
type RefreshTokenEngine struct {
	store    domain.RefreshTokenStore
	lifetime time.Duration
}

func NewRefreshTokenEngine(store domain.RefreshTokenStore, lifetime time.Duration) *RefreshTokenEngine {
	return &RefreshTokenEngine{store: store, lifetime: lifetime}
}

// IssueInitial starts a new family for the subject, e.g. at login. The raw
// secret is returned exactly once and never stored or logged.
func (e *RefreshTokenEngine) IssueInitial(ctx context.Context, userID string, reqCtx domain.RequestContext) (string, error) {
	raw, err := generateRawToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		FamilyID:  uuid.NewString(),
		TokenHash: sha256Hex(raw),
		IssuedAt:  now,
		ExpiresAt: now.Add(e.lifetime),
		IPAddress: reqCtx.IPAddress,
		UserAgent: reqCtx.UserAgent,
		CreatedAt: now,
	}
	if err := e.store.Insert(ctx, rt); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return raw, nil
}

// Rotate exchanges oldRaw for a fresh token in the same family. Exactly one
// concurrent caller holding the same raw token can win; the rest observe the
// conditional update not applying, which revokes the whole family.
func (e *RefreshTokenEngine) Rotate(ctx context.Context, oldRaw string, reqCtx domain.RequestContext) (string, error) {
	old, err := e.store.FindByHash(ctx, sha256Hex(oldRaw))
	if err != nil {
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if old == nil {
		return "", autherror.ErrRefreshTokenNotFound
	}

	now := time.Now()
	applied, err := e.store.MarkUsedIfUnused(ctx, old.ID, now)
	if err != nil {
		return "", fmt.Errorf("failed to mark refresh token used: %w", err)
	}
	if applied != 1 {
		// Already used or revoked: a stolen or raced token poisons every
		// descendant.
		if _, err := e.store.RevokeFamily(ctx, old.FamilyID, now); err != nil {
			return "", fmt.Errorf("failed to revoke token family: %w", err)
		}
		return "", autherror.ErrRefreshReuseDetected
	}

	raw, err := generateRawToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	child := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    old.UserID,
		FamilyID:  old.FamilyID,
		ParentID:  &old.ID,
		TokenHash: sha256Hex(raw),
		IssuedAt:  now,
		ExpiresAt: now.Add(e.lifetime),
		IPAddress: reqCtx.IPAddress,
		UserAgent: reqCtx.UserAgent,
		CreatedAt: now,
	}
	if err := e.store.Insert(ctx, child); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return raw, nil
}

// Validate returns the record behind raw if it is still the live leaf of its
// family. Presenting an already-rotated token revokes the family.
func (e *RefreshTokenEngine) Validate(ctx context.Context, raw string) (*domain.RefreshToken, error) {
	rt, err := e.store.FindByHashWithSubject(ctx, sha256Hex(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if rt == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	now := time.Now()
	if !rt.ExpiresAt.After(now) {
		return nil, autherror.ErrRefreshTokenExpired
	}
	if rt.RevokedAt != nil {
		return nil, autherror.ErrRefreshTokenRevoked
	}
	if rt.UsedAt != nil {
		if _, err := e.store.RevokeFamily(ctx, rt.FamilyID, now); err != nil {
			return nil, fmt.Errorf("failed to revoke token family: %w", err)
		}
		return nil, autherror.ErrRefreshReuseDetected
	}

	return rt, nil
}

// RevokeFamilyByRawToken ends the session behind raw, e.g. on logout.
func (e *RefreshTokenEngine) RevokeFamilyByRawToken(ctx context.Context, raw string) (int64, error) {
	rt, err := e.store.FindByHash(ctx, sha256Hex(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if rt == nil {
		return 0, autherror.ErrRefreshTokenNotFound
	}
	return e.store.RevokeFamily(ctx, rt.FamilyID, time.Now())
}

// RevokeFamily marks every non-revoked record of the family revoked.
// Idempotent; repeated calls are no-ops beyond the first.
func (e *RefreshTokenEngine) RevokeFamily(ctx context.Context, familyID string) (int64, error) {
	return e.store.RevokeFamily(ctx, familyID, time.Now())
}

// RevokeAllForSubject ends every session owned by the subject (the account's
// email), e.g. after a password reset. Idempotent.
func (e *RefreshTokenEngine) RevokeAllForSubject(ctx context.Context, subject string) (int64, error) {
	return e.store.RevokeForSubject(ctx, subject, time.Now())
}

// PurgeExpired deletes records past their expiry. Run by the background
// purge task, never on the request path.
func (e *RefreshTokenEngine) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return e.store.PurgeExpired(ctx, now)
}

func generateRawToken() (string, error) {
	buf := make([]byte, authconstant.RefreshSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func sha256Hex(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
