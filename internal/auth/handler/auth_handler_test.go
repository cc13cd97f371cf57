package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiofy/auth-service/internal/auth/domain"
	"github.com/radiofy/auth-service/internal/auth/dto"
	"github.com/radiofy/auth-service/internal/auth/handler"
	"github.com/radiofy/auth-service/internal/auth/service"
	"github.com/radiofy/auth-service/internal/mocks"
)

type handlerFixture struct {
	app       *fiber.App
	otpStore  *mocks.MockOtpStore
	rtStore   *mocks.MockRefreshTokenStore
	directory *mocks.MockSubjectDirectory
	notifier  *mocks.MockNotifier
	signer    *mocks.MockAccessTokenIssuer
	hasher    *service.CredentialHasher
}

func newHandlerFixture(t *testing.T, echoEnabled bool) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &handlerFixture{
		otpStore:  mocks.NewMockOtpStore(ctrl),
		rtStore:   mocks.NewMockRefreshTokenStore(ctrl),
		directory: mocks.NewMockSubjectDirectory(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		signer:    mocks.NewMockAccessTokenIssuer(ctrl),
		hasher:    service.NewCredentialHasher(),
	}

	otpEngine := service.NewOtpLifecycleEngine(f.otpStore, f.directory, f.notifier, f.hasher, service.OtpEngineConfig{
		CodeLength:     6,
		VerifyTTL:      15 * time.Minute,
		ResetTTL:       10 * time.Minute,
		MaxActive:      3,
		MaxAttempts:    5,
		ThrottleWindow: 60 * time.Second,
		EchoEnabled:    echoEnabled,
	})
	refreshEngine := service.NewRefreshTokenEngine(f.rtStore, 96*time.Hour)

	h := handler.NewAuthHandler(otpEngine, refreshEngine, f.signer, echoEnabled)

	f.app = fiber.New()
	f.app.Post("/send-verification", h.SendVerification)
	f.app.Post("/verify-email", h.VerifyEmail)
	f.app.Post("/forgot-password", h.ForgotPassword)
	f.app.Post("/reset-password", h.ResetPassword)
	f.app.Post("/refresh", h.Refresh)
	f.app.Delete("/session", h.Logout)

	return f
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}

	return resp.StatusCode, decoded
}

func TestSendVerification(t *testing.T) {
	t.Run("success with echo", func(t *testing.T) {
		f := newHandlerFixture(t, true)

		f.otpStore.EXPECT().CountActive(gomock.Any(), "a@b.com", domain.PurposeEmailVerify, gomock.Any()).Return(0, nil)
		f.otpStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Send(gomock.Any(), "a@b.com", gomock.Any(), domain.PurposeEmailVerify, gomock.Any()).Return(nil)

		status, body := doRequest(t, f.app, "POST", "/send-verification",
			dto.SendVerificationInput{Email: "a@b.com"})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, body["code"], 6)
	})

	t.Run("too many active codes", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.otpStore.EXPECT().CountActive(gomock.Any(), "a@b.com", domain.PurposeEmailVerify, gomock.Any()).Return(3, nil)

		status, _ := doRequest(t, f.app, "POST", "/send-verification",
			dto.SendVerificationInput{Email: "a@b.com"})

		assert.Equal(t, fiber.StatusTooManyRequests, status)
	})

	t.Run("missing email", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		status, _ := doRequest(t, f.app, "POST", "/send-verification",
			dto.SendVerificationInput{})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestVerifyEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		hash, err := f.hasher.Hash("042719")
		require.NoError(t, err)
		rec := &domain.OtpRecord{
			ID: "otp-1", Subject: "a@b.com", Purpose: domain.PurposeEmailVerify,
			CodeHash: hash, ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		f.otpStore.EXPECT().FindLatestUnconsumed(gomock.Any(), "a@b.com", domain.PurposeEmailVerify).Return(rec, nil)
		f.directory.EXPECT().MarkVerified(gomock.Any(), "a@b.com", gomock.Any()).Return(true, nil)
		f.otpStore.EXPECT().Consume(gomock.Any(), "otp-1", gomock.Any()).Return(true, nil)

		status, _ := doRequest(t, f.app, "POST", "/verify-email",
			dto.VerifyEmailInput{Email: "a@b.com", Code: "042719"})

		assert.Equal(t, fiber.StatusNoContent, status)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		hash, err := f.hasher.Hash("042719")
		require.NoError(t, err)
		rec := &domain.OtpRecord{
			ID: "otp-1", Subject: "a@b.com", Purpose: domain.PurposeEmailVerify,
			CodeHash: hash, ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		f.otpStore.EXPECT().FindLatestUnconsumed(gomock.Any(), "a@b.com", domain.PurposeEmailVerify).Return(rec, nil)
		f.otpStore.EXPECT().IncrementAttempts(gomock.Any(), "otp-1").Return(true, nil)

		status, _ := doRequest(t, f.app, "POST", "/verify-email",
			dto.VerifyEmailInput{Email: "a@b.com", Code: "999999"})

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("already verified", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		hash, err := f.hasher.Hash("042719")
		require.NoError(t, err)
		rec := &domain.OtpRecord{
			ID: "otp-1", Subject: "a@b.com", Purpose: domain.PurposeEmailVerify,
			CodeHash: hash, ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		f.otpStore.EXPECT().FindLatestUnconsumed(gomock.Any(), "a@b.com", domain.PurposeEmailVerify).Return(rec, nil)
		f.directory.EXPECT().MarkVerified(gomock.Any(), "a@b.com", gomock.Any()).Return(false, nil)
		f.otpStore.EXPECT().Consume(gomock.Any(), "otp-1", gomock.Any()).Return(true, nil)

		status, _ := doRequest(t, f.app, "POST", "/verify-email",
			dto.VerifyEmailInput{Email: "a@b.com", Code: "042719"})

		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("throttled", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.otpStore.EXPECT().FindLatest(gomock.Any(), "a@b.com", domain.PurposePasswordReset).Return(&domain.OtpRecord{
			CreatedAt: time.Now().Add(-5 * time.Second),
		}, nil)

		status, _ := doRequest(t, f.app, "POST", "/forgot-password",
			dto.ForgotPasswordInput{Email: "a@b.com"})

		assert.Equal(t, fiber.StatusTooManyRequests, status)
	})

	t.Run("infrastructure failure is masked", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.otpStore.EXPECT().FindLatest(gomock.Any(), "a@b.com", domain.PurposePasswordReset).
			Return(nil, errors.New("db down"))

		status, _ := doRequest(t, f.app, "POST", "/forgot-password",
			dto.ForgotPasswordInput{Email: "a@b.com"})

		assert.Equal(t, fiber.StatusNoContent, status)
	})

	t.Run("success without echo", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.otpStore.EXPECT().FindLatest(gomock.Any(), "a@b.com", domain.PurposePasswordReset).Return(nil, nil)
		f.otpStore.EXPECT().CountActive(gomock.Any(), "a@b.com", domain.PurposePasswordReset, gomock.Any()).Return(0, nil)
		f.otpStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Send(gomock.Any(), "a@b.com", gomock.Any(), domain.PurposePasswordReset, gomock.Any()).Return(nil)

		status, body := doRequest(t, f.app, "POST", "/forgot-password",
			dto.ForgotPasswordInput{Email: "a@b.com"})

		assert.Equal(t, fiber.StatusNoContent, status)
		assert.Nil(t, body)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("success revokes all sessions", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		hash, err := f.hasher.Hash("042719")
		require.NoError(t, err)
		rec := &domain.OtpRecord{
			ID: "otp-1", Subject: "a@b.com", Purpose: domain.PurposePasswordReset,
			CodeHash: hash, ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		f.otpStore.EXPECT().FindLatestUnconsumed(gomock.Any(), "a@b.com", domain.PurposePasswordReset).Return(rec, nil)
		f.otpStore.EXPECT().Consume(gomock.Any(), "otp-1", gomock.Any()).Return(true, nil)
		f.rtStore.EXPECT().RevokeForSubject(gomock.Any(), "a@b.com", gomock.Any()).Return(int64(2), nil)

		status, _ := doRequest(t, f.app, "POST", "/reset-password",
			dto.ResetPasswordInput{Email: "a@b.com", Code: "042719", NewPassword: "NewPassw0rd"})

		assert.Equal(t, fiber.StatusNoContent, status)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		status, _ := doRequest(t, f.app, "POST", "/reset-password",
			dto.ResetPasswordInput{Email: "a@b.com", Code: "042719", NewPassword: "weak"})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("invalid code", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.otpStore.EXPECT().FindLatestUnconsumed(gomock.Any(), "a@b.com", domain.PurposePasswordReset).Return(nil, nil)

		status, _ := doRequest(t, f.app, "POST", "/reset-password",
			dto.ResetPasswordInput{Email: "a@b.com", Code: "042719", NewPassword: "NewPassw0rd"})

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("success returns token pair", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		live := &domain.RefreshToken{
			ID: "rt-1", UserID: "user-123", FamilyID: "fam-1",
			ExpiresAt: time.Now().Add(time.Hour), UserEmail: "a@b.com",
		}

		f.rtStore.EXPECT().FindByHashWithSubject(gomock.Any(), gomock.Any()).Return(live, nil)
		f.rtStore.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(live, nil)
		f.rtStore.EXPECT().MarkUsedIfUnused(gomock.Any(), "rt-1", gomock.Any()).Return(int64(1), nil)
		f.rtStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.signer.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
		f.signer.EXPECT().Issue("user-123", gomock.Any(), 15*time.Minute).Return("signed-access-token", nil)

		status, body := doRequest(t, f.app, "POST", "/refresh",
			dto.RefreshInput{RefreshToken: "raw-refresh-token"})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "signed-access-token", body["access_token"])
		assert.NotEmpty(t, body["refresh_token"])
	})

	t.Run("reuse detected", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		used := time.Now().Add(-time.Minute)
		replayed := &domain.RefreshToken{
			ID: "rt-1", UserID: "user-123", FamilyID: "fam-1",
			ExpiresAt: time.Now().Add(time.Hour), UsedAt: &used,
		}

		f.rtStore.EXPECT().FindByHashWithSubject(gomock.Any(), gomock.Any()).Return(replayed, nil)
		f.rtStore.EXPECT().RevokeFamily(gomock.Any(), "fam-1", gomock.Any()).Return(int64(2), nil)

		status, _ := doRequest(t, f.app, "POST", "/refresh",
			dto.RefreshInput{RefreshToken: "replayed-token"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.rtStore.EXPECT().FindByHashWithSubject(gomock.Any(), gomock.Any()).Return(nil, nil)

		status, _ := doRequest(t, f.app, "POST", "/refresh",
			dto.RefreshInput{RefreshToken: "unknown"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestLogout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		rt := &domain.RefreshToken{ID: "rt-1", FamilyID: "fam-1"}
		f.rtStore.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(rt, nil)
		f.rtStore.EXPECT().RevokeFamily(gomock.Any(), "fam-1", gomock.Any()).Return(int64(1), nil)

		status, _ := doRequest(t, f.app, "DELETE", "/session",
			dto.LogoutInput{RefreshToken: "raw-refresh-token"})

		assert.Equal(t, fiber.StatusNoContent, status)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newHandlerFixture(t, false)

		f.rtStore.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

		status, _ := doRequest(t, f.app, "DELETE", "/session",
			dto.LogoutInput{RefreshToken: "unknown"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}
