package dto

// LoginRequest is the first step of the two-step login.
type LoginRequest struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required"`
}

// LoginResponse is the outcome of the first login step. Verified
// accounts receive their token immediately; unverified accounts only
// get the code-dispatch confirmation and finish through VerifyOTP.
type LoginResponse struct {
	Message string        `json:"message"`
	Email   string        `json:"user_email"`
	Token   string        `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// VerifyOTPRequest completes login with the emailed code.
type VerifyOTPRequest struct {
	Email string `json:"user_email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// ResendOTPRequest asks for a fresh code during the login window.
type ResendOTPRequest struct {
	Email string `json:"user_email" validate:"required,email"`
}

// AuthResponse carries the issued token and the signed-in user.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ForgotPasswordRequest starts the email reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"user_email" validate:"required,email"`
}

// ResetPasswordRequest finishes the reset flow with the emailed token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
