package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister          = "user registered successfully, please check your email"
	MessageSuccessLogin             = "login successful"
	MessageSuccessVerifyEmail       = "email verified successfully"
	MessageSuccessSendVerification  = "verification email sent"
	MessageSuccessGetMe             = "user retrieved successfully"
	MessageSuccessUpdatePreferences = "preferences updated successfully"
	MessageSuccessUploadAvatar      = "avatar uploaded successfully"
	MessageSuccessGoogleLogin       = "google login successful"

	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to login"
	MessageFailedVerifyEmail       = "failed to verify email"
	MessageFailedSendVerification  = "failed to send verification email"
	MessageFailedGetMe             = "failed to retrieve user"
	MessageFailedUpdatePreferences = "failed to update preferences"
	MessageFailedUploadAvatar      = "failed to upload avatar"
	MessageFailedGoogleLogin       = "failed to login with google"

	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountNotVerified     = errors.New("account not verified")
	ErrAccountAlreadyVerified = errors.New("account already verified")
	ErrVerificationInvalid    = errors.New("verification token invalid or expired")
	ErrPasswordLogin          = errors.New("account uses google sign-in")
	ErrGoogleTokenInvalid     = errors.New("google token invalid")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	GoogleLoginRequest struct {
		AccessToken string `json:"access_token" validate:"required"`
	}

	SendVerificationRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UpdatePreferencesRequest struct {
		DietaryPreferences *[]string `json:"dietary_preferences" validate:"omitempty"`
		Allergies          *[]string `json:"allergies" validate:"omitempty"`
		PreferredCuisines  *[]string `json:"preferred_cuisines" validate:"omitempty"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	UserResponse struct {
		ID                 string     `json:"id"`
		Name               string     `json:"name"`
		Email              string     `json:"email"`
		IsVerified         bool       `json:"is_verified"`
		DietaryPreferences []string   `json:"dietary_preferences"`
		Allergies          []string   `json:"allergies"`
		PreferredCuisines  []string   `json:"preferred_cuisines"`
		HouseholdID        string     `json:"household_id,omitempty"`
		AvatarURL          string     `json:"avatar_url,omitempty"`
		LastLogin          *time.Time `json:"last_login,omitempty"`
	}
)
