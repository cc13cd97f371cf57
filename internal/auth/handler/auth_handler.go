package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/radiofy/auth-service/internal/auth/domain"
	"github.com/radiofy/auth-service/internal/auth/dto"
	"github.com/radiofy/auth-service/internal/auth/service"
	autherror "github.com/radiofy/auth-service/internal/errors"
)

// AuthHandler maps engine outcomes to HTTP responses. All credential policy
// lives in the engines; this layer only decides status codes and masking.
type AuthHandler struct {
	otpEngine     *service.OtpLifecycleEngine
	refreshEngine *service.RefreshTokenEngine
	signer        service.AccessTokenIssuer
	echoEnabled   bool
}

func NewAuthHandler(
	otpEngine *service.OtpLifecycleEngine,
	refreshEngine *service.RefreshTokenEngine,
	signer service.AccessTokenIssuer,
	echoEnabled bool,
) *AuthHandler {
	return &AuthHandler{
		otpEngine:     otpEngine,
		refreshEngine: refreshEngine,
		signer:        signer,
		echoEnabled:   echoEnabled,
	}
}

func requestContext(c *fiber.Ctx) domain.RequestContext {
	return domain.RequestContext{
		IPAddress: c.IP(),
		UserAgent: string(c.Request().Header.UserAgent()),
	}
}

// SendVerification issues an email-verification code.
func (h *AuthHandler) SendVerification(c *fiber.Ctx) error {
	var input dto.SendVerificationInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	code, err := h.otpEngine.Issue(c.Context(), input.Email, domain.PurposeEmailVerify, requestContext(c))
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrOtpTooManyActive):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, autherror.ErrOtpDelivery):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not deliver code"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	if h.echoEnabled {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"code": code})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyEmail consumes an email-verification code.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	err := h.otpEngine.Verify(c.Context(), input.Email, domain.PurposeEmailVerify, input.Code)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrOtpAlreadySatisfied):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, autherror.ErrOtpNotFound),
			errors.Is(err, autherror.ErrOtpExpired),
			errors.Is(err, autherror.ErrOtpInvalidCode),
			errors.Is(err, autherror.ErrOtpExhausted):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "the code is invalid or expired"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ForgotPassword issues a password-reset code. The response never reveals
// whether the email exists: every outcome except throttling collapses to 204.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	code, err := h.otpEngine.Issue(c.Context(), input.Email, domain.PurposePasswordReset, requestContext(c))
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrOtpThrottled),
			errors.Is(err, autherror.ErrOtpTooManyActive):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": autherror.ErrOtpThrottled.Error()})
		default:
			log.Printf("warn: forgot-password issue failed for %s: %v", input.Email, err)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}

	if h.echoEnabled {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"code": code})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword consumes a password-reset code and ends every session of the
// subject. Persisting the new password hash belongs to the account service.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if !validPassword(input.NewPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "password must be 8-72 characters with at least one lowercase letter, one uppercase letter, and one digit",
		})
	}

	err := h.otpEngine.Verify(c.Context(), input.Email, domain.PurposePasswordReset, input.Code)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrOtpNotFound),
			errors.Is(err, autherror.ErrOtpExpired),
			errors.Is(err, autherror.ErrOtpInvalidCode),
			errors.Is(err, autherror.ErrOtpExhausted):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "the code is invalid or expired"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	if _, err := h.refreshEngine.RevokeAllForSubject(c.Context(), input.Email); err != nil {
		log.Printf("warn: failed to revoke sessions for %s after password reset: %v", input.Email, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Refresh rotates a refresh token and mints a new access token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	rec, err := h.refreshEngine.Validate(c.Context(), input.RefreshToken)
	if err != nil {
		return unauthorizedRefresh(c, err)
	}

	newRefresh, err := h.refreshEngine.Rotate(c.Context(), input.RefreshToken, requestContext(c))
	if err != nil {
		return unauthorizedRefresh(c, err)
	}

	accessToken, err := h.signer.Issue(rec.UserID, map[string]interface{}{"email": rec.UserEmail}, h.signer.AccessTokenTTL())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	})
}

// Logout revokes the whole family behind the presented refresh token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if _, err := h.refreshEngine.RevokeFamilyByRawToken(c.Context(), input.RefreshToken); err != nil {
		if errors.Is(err, autherror.ErrRefreshTokenNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func unauthorizedRefresh(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrRefreshTokenNotFound),
		errors.Is(err, autherror.ErrRefreshTokenExpired),
		errors.Is(err, autherror.ErrRefreshTokenRevoked),
		errors.Is(err, autherror.ErrRefreshReuseDetected):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func validPassword(pw string) bool {
	if len(pw) < 8 || len(pw) > 72 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}
