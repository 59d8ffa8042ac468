package services

import (
	"errors"
	"fmt"
	"time"

	"legalvault_backend/internal/auth"
	"legalvault_backend/internal/config"
	"legalvault_backend/internal/email"
	"legalvault_backend/internal/logger"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

// AuthService runs the login flow: a password check, then either a
// session token right away (verified accounts) or a six-digit code
// delivered by email with the token issued on verification.
type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyOTP(req *dto.VerifyOTPRequest) (*dto.AuthResponse, error)
	ResendOTP(req *dto.ResendOTPRequest) (*dto.LoginResponse, error)
	ForgotPassword(req *dto.ForgotPasswordRequest) error
	ResetPassword(req *dto.ResetPasswordRequest) error
	// CurrentUser resolves the account behind an already-validated token.
	CurrentUser(userID uint) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	mailer   email.Mailer
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, mailer email.Mailer, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, mailer: mailer, cfg: cfg}
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Verified accounts skip the email code.
	if user.IsVerified {
		token, err := auth.GenerateToken(user.ID, string(user.Role))
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.LoginResponse{
			Message: "Login successful",
			Email:   user.Email,
			Token:   token,
			User:    dto.NewUserResponse(user),
		}, nil
	}

	if err := s.issueOTP(user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "A verification code has been sent to your email",
		Email:   user.Email,
	}, nil
}

func (s *authService) VerifyOTP(req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.OTP == "" || user.OTP != req.OTP {
		return nil, apperrors.ErrOTPInvalid
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		return nil, apperrors.ErrOTPExpired
	}

	if err := s.userRepo.MarkVerified(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *authService) ResendOTP(req *dto.ResendOTPRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.issueOTP(user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "A new verification code has been sent to your email",
		Email:   user.Email,
	}, nil
}

// ForgotPassword always reports success so the endpoint cannot be used
// to probe which emails are registered.
func (s *authService) ForgotPassword(req *dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateResetToken(user.ID, 15*time.Minute)
	if err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.ClientURL, token)
	go func() {
		if err := s.mailer.SendPasswordReset(user.Email, user.FirstName, resetLink); err != nil {
			logger.Error("failed to send password reset email", "user_id", user.ID, "error", err)
		}
	}()
	return nil
}

func (s *authService) ResetPassword(req *dto.ResetPasswordRequest) error {
	claims, err := auth.ParseToken(req.Token)
	if err != nil || claims.Subject != "password_reset" {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(claims.UserID, hash); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) CurrentUser(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) issueOTP(user *models.User) error {
	otp, err := auth.GenerateOTP()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expiry := time.Now().Add(auth.OTPTTL)
	if err := s.userRepo.SetOTP(user.ID, otp, expiry); err != nil {
		return apperrors.InternalError(err)
	}

	go func() {
		if err := s.mailer.SendOTP(user.Email, user.FirstName, otp); err != nil {
			logger.Error("failed to send otp email", "user_id", user.ID, "error", err)
		}
	}()
	return nil
}
