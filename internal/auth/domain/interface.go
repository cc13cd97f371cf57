package domain

//go:generate mockgen -destination=../../mocks/mock_otp_store.go -package=mocks github.com/radiofy/auth-service/internal/auth/domain OtpStore
//go:generate mockgen -destination=../../mocks/mock_refresh_token_store.go -package=mocks github.com/radiofy/auth-service/internal/auth/domain RefreshTokenStore
//go:generate mockgen -destination=../../mocks/mock_notifier.go -package=mocks github.com/radiofy/auth-service/internal/auth/domain Notifier
//go:generate mockgen -destination=../../mocks/mock_subject_directory.go -package=mocks github.com/radiofy/auth-service/internal/auth/domain SubjectDirectory

import (
	"context"
	"time"
)

type OtpStore interface {
	Insert(ctx context.Context, rec *OtpRecord) error
	FindLatestUnconsumed(ctx context.Context, subject string, purpose OtpPurpose) (*OtpRecord, error)
	FindLatest(ctx context.Context, subject string, purpose OtpPurpose) (*OtpRecord, error)
	CountActive(ctx context.Context, subject string, purpose OtpPurpose, now time.Time) (int, error)
	IncrementAttempts(ctx context.Context, id string) (bool, error)
	Consume(ctx context.Context, id string, now time.Time) (bool, error)
	PurgeExpiredOrConsumed(ctx context.Context, now time.Time) (int64, error)
}

type RefreshTokenStore interface {
	Insert(ctx context.Context, rt *RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	FindByHashWithSubject(ctx context.Context, tokenHash string) (*RefreshToken, error)
	MarkUsedIfUnused(ctx context.Context, id string, now time.Time) (int64, error)
	RevokeFamily(ctx context.Context, familyID string, now time.Time) (int64, error)
	RevokeForSubject(ctx context.Context, userID string, now time.Time) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// Notifier delivers a raw one-time code to its destination.
type Notifier interface {
	Send(ctx context.Context, destination, rawCode string, purpose OtpPurpose, ttl time.Duration) error
}

// SubjectDirectory is the engines' narrow view of the account collaborator.
// MarkVerified returns false when the subject was already verified.
type SubjectDirectory interface {
	Exists(ctx context.Context, subject string) (bool, error)
	MarkVerified(ctx context.Context, subject string, at time.Time) (bool, error)
}
