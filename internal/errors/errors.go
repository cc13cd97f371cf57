package errors

import (
	"errors"
)

// OTP lifecycle failures.
var (
	ErrOtpNotFound         = errors.New("otp code not found or already used")
	ErrOtpExpired          = errors.New("otp code expired")
	ErrOtpInvalidCode      = errors.New("invalid otp code")
	ErrOtpExhausted        = errors.New("too many otp attempts")
	ErrOtpAlreadySatisfied = errors.New("otp side effect already satisfied")
	ErrOtpThrottled        = errors.New("please wait before requesting another code")
	ErrOtpTooManyActive    = errors.New("too many active otp codes")
	ErrOtpDelivery         = errors.New("failed to deliver otp code")
)

// Refresh token failures.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrRefreshReuseDetected = errors.New("refresh token reuse detected")
)

// Access token failures.
var (
	ErrTokenMalformed      = errors.New("malformed token")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenUnsupportedAlg = errors.New("unsupported signing algorithm")
	ErrTokenBadSignature   = errors.New("invalid token signature")
)
