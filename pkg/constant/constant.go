package constant

const (
	// DefaultOtpLength is the number of digits in a generated one-time code.
	DefaultOtpLength = 6

	// DefaultOtpMaxActive caps unconsumed, unexpired codes per subject/purpose.
	DefaultOtpMaxActive = 3

	// DefaultOtpMaxAttempts is the number of wrong guesses before a code
	// becomes permanently unusable.
	DefaultOtpMaxAttempts = 5

	// RefreshSecretBytes is the entropy of a raw refresh token (256 bits).
	RefreshSecretBytes = 32

	// MinSigningSecretBytes is the minimum accepted HMAC key length.
	MinSigningSecretBytes = 32
)
