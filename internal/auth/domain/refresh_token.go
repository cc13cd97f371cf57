package domain

import "time"

// RefreshToken is one link of a rotation chain. Only a SHA-256 hex hash of the
// raw secret is stored; the raw value is returned to the client exactly once.
type RefreshToken struct {
	ID        string
	UserID    string
	FamilyID  string
	ParentID  *string
	TokenHash string
	IssuedAt  time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
	RevokedAt *time.Time
	IPAddress string
	UserAgent string
	CreatedAt time.Time

	// UserEmail is populated by lookups that join the owning account.
	UserEmail string
}

// IsActive reports whether this token is the live leaf of its family.
func (rt *RefreshToken) IsActive(now time.Time) bool {
	return rt.UsedAt == nil && rt.RevokedAt == nil && rt.ExpiresAt.After(now)
}

// RequestContext carries per-request audit metadata attached to issued
// credentials.
type RequestContext struct {
	IPAddress string
	UserAgent string
}
