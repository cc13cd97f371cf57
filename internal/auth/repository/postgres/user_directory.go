package postgres

import (
	"context"
	"fmt"
	"time"
)

// UserDirectory implements domain.SubjectDirectory against the users table.
// It is the only window the engines have into account state.
type UserDirectory struct {
	db PgxIface
}

func NewUserDirectory(db PgxIface) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) Exists(ctx context.Context, subject string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := d.db.QueryRow(ctx, query, subject).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subject existence: %w", err)
	}

	return exists, nil
}

// MarkVerified sets email_verified_at once. The conditional predicate makes
// a second call report applied == false instead of overwriting the timestamp.
func (d *UserDirectory) MarkVerified(ctx context.Context, subject string, at time.Time) (bool, error) {
	query := `UPDATE users SET email_verified_at = $2 WHERE email = $1 AND email_verified_at IS NULL`

	tag, err := d.db.Exec(ctx, query, subject, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark subject verified: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
