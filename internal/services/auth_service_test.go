package services

import (
	"testing"
	"time"

	"legalvault_backend/internal/auth"
	"legalvault_backend/internal/config"
	"legalvault_backend/internal/email"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	auth.InitJWT("test-secret", 60)
	cfg := &config.Config{ClientURL: "http://localhost:4000"}
	return NewAuthService(repositories.NewUserRepository(db), email.NewLogMailer(), cfg)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)

	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "wrong"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	// Unknown email is indistinguishable from a wrong password.
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@firm.test", Password: "wrong"})
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)
	require.NoError(t, db.Model(user).Update("status", models.UserStatusSuspended).Error)

	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestLogin_VerifiedUserGetsTokenDirectly(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleLawyer)
	require.NoError(t, db.Model(user).Update("is_verified", true).Error)

	resp, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// No code is issued on this path.
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Empty(t, stored.OTP)
}

func TestLogin_OTPFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleLawyer)

	resp, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)
	assert.Empty(t, resp.Token)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.Len(t, stored.OTP, 6)
	require.NotNil(t, stored.OTPExpiry)

	// Wrong code first.
	_, err = svc.VerifyOTP(&dto.VerifyOTPRequest{Email: user.Email, OTP: "000000"})
	if stored.OTP != "000000" {
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
	}

	authResp, err := svc.VerifyOTP(&dto.VerifyOTPRequest{Email: user.Email, OTP: stored.OTP})
	require.NoError(t, err)
	require.NotEmpty(t, authResp.Token)
	assert.Equal(t, user.ID, authResp.User.ID)

	claims, err := auth.ParseToken(authResp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleLawyer), claims.Role)

	// Verification consumes the code.
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.OTP)
}

func TestVerifyOTP_Expired(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"otp":        "123456",
		"otp_expiry": expired,
	}).Error)

	_, err := svc.VerifyOTP(&dto.VerifyOTPRequest{Email: user.Email, OTP: "123456"})
	require.ErrorIs(t, err, apperrors.ErrOTPExpired)
}

func TestResendOTP_ReplacesCode(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)

	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	var before models.User
	require.NoError(t, db.First(&before, user.ID).Error)

	_, err = svc.ResendOTP(&dto.ResendOTPRequest{Email: user.Email})
	require.NoError(t, err)

	var after models.User
	require.NoError(t, db.First(&after, user.ID).Error)
	require.Len(t, after.OTP, 6)
	assert.True(t, after.OTPExpiry.After(time.Now()))
}

func TestResetPassword_FlowAndBadToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)

	err := svc.ResetPassword(&dto.ResetPasswordRequest{Token: "garbage", NewPassword: "newpassword1"})
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// A plain login token must not work as a reset token.
	loginToken, err := auth.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)
	err = svc.ResetPassword(&dto.ResetPasswordRequest{Token: loginToken, NewPassword: "newpassword1"})
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)

	resetToken, err := auth.GenerateResetToken(user.ID, time.Hour)
	require.NoError(t, err)
	require.NoError(t, svc.ResetPassword(&dto.ResetPasswordRequest{Token: resetToken, NewPassword: "newpassword1"}))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, auth.CheckPasswordHash("newpassword1", stored.PasswordHash))
}

func TestForgotPassword_SilentOnUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.ForgotPassword(&dto.ForgotPasswordRequest{Email: "nobody@firm.test"}))
}
