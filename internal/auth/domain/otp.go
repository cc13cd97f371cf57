package domain

import "time"

// OtpPurpose discriminates what a one-time code proves.
type OtpPurpose string

const (
	PurposeEmailVerify   OtpPurpose = "EMAIL_VERIFY"
	PurposePasswordReset OtpPurpose = "PASSWORD_RESET"
)

// OtpRecord stores a hashed one-time code. The raw code is never persisted.
type OtpRecord struct {
	ID         string
	Subject    string
	Purpose    OtpPurpose
	CodeHash   string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	Attempts   int
	CreatedAt  time.Time
	IPAddress  string
	UserAgent  string
}

func (o *OtpRecord) IsConsumed() bool {
	return o.ConsumedAt != nil
}

// IsActive reports whether the code is still usable at the given instant.
func (o *OtpRecord) IsActive(now time.Time) bool {
	return o.ConsumedAt == nil && o.ExpiresAt.After(now)
}
