package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/radiofy/auth-service/internal/auth/domain"
)

// OtpRepository implements domain.OtpStore on PostgreSQL.
type OtpRepository struct {
	db PgxIface
}

func NewOtpRepository(db PgxIface) *OtpRepository {
	return &OtpRepository{db: db}
}

func (r *OtpRepository) Insert(ctx context.Context, rec *domain.OtpRecord) error {
	query := `INSERT INTO email_otp_codes
		(id, subject, purpose, code_hash, expires_at, consumed_at, attempts, created_at, request_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.Subject, rec.Purpose, rec.CodeHash, rec.ExpiresAt,
		rec.ConsumedAt, rec.Attempts, rec.CreatedAt, rec.IPAddress, rec.UserAgent)
	if err != nil {
		return fmt.Errorf("failed to insert otp record: %w", err)
	}

	return nil
}

func (r *OtpRepository) FindLatestUnconsumed(ctx context.Context, subject string, purpose domain.OtpPurpose) (*domain.OtpRecord, error) {
	query := `
		SELECT id, subject, purpose, code_hash, expires_at, consumed_at, attempts, created_at, request_ip, user_agent
		FROM email_otp_codes
		WHERE subject = $1 AND purpose = $2 AND consumed_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, subject, purpose))
}

func (r *OtpRepository) FindLatest(ctx context.Context, subject string, purpose domain.OtpPurpose) (*domain.OtpRecord, error) {
	query := `
		SELECT id, subject, purpose, code_hash, expires_at, consumed_at, attempts, created_at, request_ip, user_agent
		FROM email_otp_codes
		WHERE subject = $1 AND purpose = $2
		ORDER BY created_at DESC
		LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, subject, purpose))
}

func (r *OtpRepository) CountActive(ctx context.Context, subject string, purpose domain.OtpPurpose, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM email_otp_codes
		WHERE subject = $1 AND purpose = $2 AND consumed_at IS NULL AND expires_at > $3`

	var count int
	if err := r.db.QueryRow(ctx, query, subject, purpose, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active otp records: %w", err)
	}

	return count, nil
}

// IncrementAttempts is a single atomic read-modify-write so concurrent wrong
// guesses are never under-counted.
func (r *OtpRepository) IncrementAttempts(ctx context.Context, id string) (bool, error) {
	query := `UPDATE email_otp_codes SET attempts = attempts + 1 WHERE id = $1 AND consumed_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to increment otp attempts: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Consume terminally marks the record; the conditional predicate makes the
// transition apply at most once.
func (r *OtpRepository) Consume(ctx context.Context, id string, now time.Time) (bool, error) {
	query := `UPDATE email_otp_codes SET consumed_at = $2 WHERE id = $1 AND consumed_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		return false, fmt.Errorf("failed to consume otp record: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *OtpRepository) PurgeExpiredOrConsumed(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM email_otp_codes WHERE expires_at <= $1 OR consumed_at IS NOT NULL`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge otp records: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *OtpRepository) scanOne(row pgx.Row) (*domain.OtpRecord, error) {
	var rec domain.OtpRecord
	err := row.Scan(&rec.ID, &rec.Subject, &rec.Purpose, &rec.CodeHash, &rec.ExpiresAt,
		&rec.ConsumedAt, &rec.Attempts, &rec.CreatedAt, &rec.IPAddress, &rec.UserAgent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan otp record: %w", err)
	}

	return &rec, nil
}
