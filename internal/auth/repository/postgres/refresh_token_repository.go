package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/radiofy/auth-service/internal/auth/domain"
)

// RefreshTokenRepository implements domain.RefreshTokenStore on PostgreSQL.
// token_hash carries a unique constraint; the rotation-critical guards are
// expressed as conditional updates so the store decides the winner.
type RefreshTokenRepository struct {
	db PgxIface
}

func NewRefreshTokenRepository(db PgxIface) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Insert(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens
		(id, user_id, family_id, parent_id, token_hash, issued_at, expires_at, used_at, revoked_at, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.FamilyID, rt.ParentID, rt.TokenHash, rt.IssuedAt,
		rt.ExpiresAt, rt.UsedAt, rt.RevokedAt, rt.IPAddress, rt.UserAgent, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, family_id, parent_id, token_hash, issued_at, expires_at, used_at, revoked_at, ip_address, user_agent, created_at
		FROM refresh_tokens
		WHERE token_hash = $1
		LIMIT 1`

	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&rt.ID, &rt.UserID, &rt.FamilyID, &rt.ParentID, &rt.TokenHash, &rt.IssuedAt,
		&rt.ExpiresAt, &rt.UsedAt, &rt.RevokedAt, &rt.IPAddress, &rt.UserAgent, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token by hash: %w", err)
	}

	return &rt, nil
}

func (r *RefreshTokenRepository) FindByHashWithSubject(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT rt.id, rt.user_id, rt.family_id, rt.parent_id, rt.token_hash, rt.issued_at, rt.expires_at,
		       rt.used_at, rt.revoked_at, rt.ip_address, rt.user_agent, rt.created_at, u.email
		FROM refresh_tokens rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.token_hash = $1
		LIMIT 1`

	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&rt.ID, &rt.UserID, &rt.FamilyID, &rt.ParentID, &rt.TokenHash, &rt.IssuedAt,
		&rt.ExpiresAt, &rt.UsedAt, &rt.RevokedAt, &rt.IPAddress, &rt.UserAgent, &rt.CreatedAt,
		&rt.UserEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token with subject: %w", err)
	}

	return &rt, nil
}

// MarkUsedIfUnused is the compare-and-swap of the rotation protocol. Exactly
// one caller observes an affected row; everyone else lost the race or holds a
// revoked token.
func (r *RefreshTokenRepository) MarkUsedIfUnused(ctx context.Context, id string, now time.Time) (int64, error) {
	query := `UPDATE refresh_tokens SET used_at = $2 WHERE id = $1 AND used_at IS NULL AND revoked_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark refresh token used: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) RevokeFamily(ctx context.Context, familyID string, now time.Time) (int64, error) {
	query := `UPDATE refresh_tokens SET revoked_at = $2 WHERE family_id = $1 AND revoked_at IS NULL`

	tag, err := r.db.Exec(ctx, query, familyID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke token family: %w", err)
	}

	return tag.RowsAffected(), nil
}

// RevokeForSubject accepts the subject's email; the owning account is
// resolved in the statement so callers need no user lookup of their own.
func (r *RefreshTokenRepository) RevokeForSubject(ctx context.Context, subject string, now time.Time) (int64, error) {
	query := `
		UPDATE refresh_tokens rt SET revoked_at = $2
		FROM users u
		WHERE rt.user_id = u.id AND u.email = $1 AND rt.revoked_at IS NULL`

	tag, err := r.db.Exec(ctx, query, subject, now)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke tokens for subject: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
