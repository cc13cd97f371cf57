package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/radiofy/auth-service/internal/auth/domain"
	autherror "github.com/radiofy/auth-service/internal/errors"
)

// OtpEngineConfig holds the tunables of the OTP lifecycle.
type OtpEngineConfig struct {
	CodeLength     int
	VerifyTTL      time.Duration
	ResetTTL       time.Duration
	MaxActive      int
	MaxAttempts    int
	ThrottleWindow time.Duration

	// EchoEnabled makes Issue return the raw code to the caller. Development
	// convenience only; production keeps it false and relies on delivery.
	EchoEnabled bool
}

// OtpLifecycleEngine issues, throttles and verifies one-time codes. Codes are
// stored hashed and become unusable on consumption, expiry or attempt
// exhaustion.
type OtpLifecycleEngine struct {
	store     domain.OtpStore
	directory domain.SubjectDirectory
	notifier  domain.Notifier
	hasher    *CredentialHasher
	cfg       OtpEngineConfig
}

func NewOtpLifecycleEngine(
	store domain.OtpStore,
	directory domain.SubjectDirectory,
	notifier domain.Notifier,
	hasher *CredentialHasher,
	cfg OtpEngineConfig,
) *OtpLifecycleEngine {
	return &OtpLifecycleEngine{
		store:     store,
		directory: directory,
		notifier:  notifier,
		hasher:    hasher,
		cfg:       cfg,
	}
}

func (e *OtpLifecycleEngine) ttlFor(purpose domain.OtpPurpose) time.Duration {
	if purpose == domain.PurposePasswordReset {
		return e.cfg.ResetTTL
	}
	return e.cfg.VerifyTTL
}

// Issue creates, persists and delivers a fresh code for (subject, purpose).
// The raw code is returned only when echo mode is enabled; otherwise callers
// receive an empty string and the code travels exclusively via the notifier.
func (e *OtpLifecycleEngine) Issue(ctx context.Context, subject string, purpose domain.OtpPurpose, reqCtx domain.RequestContext) (string, error) {
	now := time.Now()

	// Cool-down applies to password resets only; email verification is capped
	// by the active-code limit below.
	if purpose == domain.PurposePasswordReset && e.cfg.ThrottleWindow > 0 {
		last, err := e.store.FindLatest(ctx, subject, purpose)
		if err != nil {
			return "", fmt.Errorf("failed to load latest otp: %w", err)
		}
		if last != nil && last.CreatedAt.After(now.Add(-e.cfg.ThrottleWindow)) {
			return "", autherror.ErrOtpThrottled
		}
	}

	active, err := e.store.CountActive(ctx, subject, purpose, now)
	if err != nil {
		return "", fmt.Errorf("failed to count active otps: %w", err)
	}
	if active >= e.cfg.MaxActive {
		return "", autherror.ErrOtpTooManyActive
	}

	code, err := generateNumericCode(e.cfg.CodeLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}

	codeHash, err := e.hasher.Hash(code)
	if err != nil {
		return "", fmt.Errorf("failed to hash otp code: %w", err)
	}

	ttl := e.ttlFor(purpose)
	rec := &domain.OtpRecord{
		ID:        uuid.NewString(),
		Subject:   subject,
		Purpose:   purpose,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(ttl),
		Attempts:  0,
		CreatedAt: now,
		IPAddress: reqCtx.IPAddress,
		UserAgent: reqCtx.UserAgent,
	}
	if err := e.store.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	if err := e.notifier.Send(ctx, subject, code, purpose, ttl); err != nil {
		return "", fmt.Errorf("%w: %v", autherror.ErrOtpDelivery, err)
	}

	if e.cfg.EchoEnabled {
		return code, nil
	}
	return "", nil
}

// Verify checks rawCode against the latest unconsumed record for
// (subject, purpose) and consumes it on success. For email verification the
// subject's account is marked verified together with consumption; a code that
// matches an already-verified account is still consumed so it cannot be
// replayed to probe account state.
func (e *OtpLifecycleEngine) Verify(ctx context.Context, subject string, purpose domain.OtpPurpose, rawCode string) error {
	now := time.Now()

	rec, err := e.store.FindLatestUnconsumed(ctx, subject, purpose)
	if err != nil {
		return fmt.Errorf("failed to load otp: %w", err)
	}
	if rec == nil {
		return autherror.ErrOtpNotFound
	}

	if !rec.ExpiresAt.After(now) {
		return autherror.ErrOtpExpired
	}

	// The attempts guard precedes the hash comparison: past the limit a
	// correct code is indistinguishable from a wrong one.
	if rec.Attempts >= e.cfg.MaxAttempts {
		return autherror.ErrOtpExhausted
	}

	if !e.hasher.Matches(rawCode, rec.CodeHash) {
		if _, err := e.store.IncrementAttempts(ctx, rec.ID); err != nil {
			return fmt.Errorf("failed to record otp attempt: %w", err)
		}
		return autherror.ErrOtpInvalidCode
	}

	if purpose == domain.PurposeEmailVerify {
		applied, err := e.directory.MarkVerified(ctx, subject, now)
		if err != nil {
			return fmt.Errorf("failed to mark subject verified: %w", err)
		}
		if !applied {
			if _, err := e.store.Consume(ctx, rec.ID, now); err != nil {
				return fmt.Errorf("failed to consume otp: %w", err)
			}
			return autherror.ErrOtpAlreadySatisfied
		}
	}

	applied, err := e.store.Consume(ctx, rec.ID, now)
	if err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	if !applied {
		// Lost a consume race against a concurrent verify of the same record.
		return autherror.ErrOtpNotFound
	}

	return nil
}

// PurgeExpiredOrConsumed removes expired and consumed records.
func (e *OtpLifecycleEngine) PurgeExpiredOrConsumed(ctx context.Context, now time.Time) (int64, error) {
	return e.store.PurgeExpiredOrConsumed(ctx, now)
}

// generateNumericCode returns a fixed-length decimal string from a CSPRNG,
// leading zeros preserved.
func generateNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
