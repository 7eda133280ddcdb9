package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/internal/utils/mailing"
	"pantrypal-backend/internal/utils/storage"
	"pantrypal-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const verificationTokenTTL = time.Hour

// Mailer sends a single message. The default implementation is the
// SMTP sender in internal/utils/mailing.
type Mailer interface {
	Send(toEmail, subject, body string) error
}

type smtpMailer struct{}

func (smtpMailer) Send(toEmail, subject, body string) error {
	return mailing.SendMail(toEmail, subject, body)
}

func NewSMTPMailer() Mailer {
	return smtpMailer{}
}

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GoogleLogin(ctx context.Context, req domain.GoogleLoginRequest) (domain.LoginResponse, error)
		VerifyEmail(ctx context.Context, token string) error
		SendVerificationEmail(ctx context.Context, email string) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdatePreferences(ctx context.Context, req domain.UpdatePreferencesRequest, userID string) (domain.UserResponse, error)
		UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		googleClient   GoogleAuthClient
		mailer         Mailer
		s3             storage.AwsS3
		appURL         string
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	googleClient GoogleAuthClient,
	mailer Mailer,
	s3 storage.AwsS3,
	appURL string,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		googleClient:   googleClient,
		mailer:         mailer,
		s3:             s3,
		appURL:         appURL,
	}
}

func generateVerificationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	token, err := generateVerificationToken()
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	expiry := time.Now().Add(verificationTokenTTL)

	user := &entities.User{
		ID:                 uuid.New(),
		Email:              req.Email,
		Password:           string(hashed),
		Name:               req.Name,
		Role:               domain.RoleUser,
		VerificationToken:  token,
		VerificationExpiry: &expiry,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		logger.Log.Errorw("failed to create user", "err", err)
		return domain.RegisterResponse{}, err
	}

	if err := s.sendVerification(user); err != nil {
		// Registration still succeeds; the user can ask for a resend.
		logger.Log.Errorw("failed to send verification email", "err", err, "email", user.Email)
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) sendVerification(user *entities.User) error {
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.appURL, user.VerificationToken)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Verify your email to start using PantryPal:</p><p><a href=%q>Verify email</a></p><p>The link expires in one hour.</p>",
		user.Name, link,
	)
	return s.mailer.Send(user.Email, "Verify your PantryPal account", body)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if user.Password == "" {
		return domain.LoginResponse{}, domain.ErrPasswordLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return domain.LoginResponse{}, domain.ErrAccountNotVerified
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		logger.Log.Errorw("failed to update last login", "err", err, "user_id", user.ID)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)

	return domain.LoginResponse{
		Token: token,
		User:  buildUserResponse(user),
	}, nil
}

func (s *userService) GoogleLogin(ctx context.Context, req domain.GoogleLoginRequest) (domain.LoginResponse, error) {
	info, err := s.googleClient.FetchUserInfo(ctx, req.AccessToken)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	user, err := s.userRepository.GetUserByGoogleID(ctx, info.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, err
		}

		// No account with this Google id; link by email or create fresh.
		user, err = s.userRepository.GetUserByEmail(ctx, info.Email)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.LoginResponse{}, err
			}

			googleID := info.ID
			user = &entities.User{
				ID:         uuid.New(),
				Email:      info.Email,
				GoogleID:   &googleID,
				Name:       info.Name,
				Role:       domain.RoleUser,
				IsVerified: true, // Google already verified the address
				AvatarURL:  info.Picture,
			}
			if err := s.userRepository.CreateUser(ctx, user); err != nil {
				logger.Log.Errorw("failed to create google user", "err", err)
				return domain.LoginResponse{}, err
			}
		} else {
			googleID := info.ID
			user.GoogleID = &googleID
			user.IsVerified = true
			if err := s.userRepository.UpdateUser(ctx, user); err != nil {
				return domain.LoginResponse{}, err
			}
		}
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		logger.Log.Errorw("failed to update last login", "err", err, "user_id", user.ID)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)

	return domain.LoginResponse{
		Token: token,
		User:  buildUserResponse(user),
	}, nil
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrVerificationInvalid
	}

	user, err := s.userRepository.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVerificationInvalid
		}
		return err
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.VerificationExpiry = nil

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrAccountAlreadyVerified
	}

	token, err := generateVerificationToken()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(verificationTokenTTL)
	user.VerificationToken = token
	user.VerificationExpiry = &expiry

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	return s.sendVerification(user)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return buildUserResponse(user), nil
}

func (s *userService) UpdatePreferences(ctx context.Context, req domain.UpdatePreferencesRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.DietaryPreferences != nil {
		user.DietaryPreferences = joinList(*req.DietaryPreferences)
	}
	if req.Allergies != nil {
		user.Allergies = joinList(*req.Allergies)
	}
	if req.PreferredCuisines != nil {
		user.PreferredCuisines = joinList(*req.PreferredCuisines)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return buildUserResponse(user), nil
}

func (s *userService) UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	fileName := fmt.Sprintf("avatar-%s", user.ID.String())
	var objectKey string

	if user.AvatarURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.AvatarURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Avatar, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
	}
	if err != nil {
		return domain.UserResponse{}, err
	}

	user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return buildUserResponse(user), nil
}

func joinList(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return strings.Join(cleaned, ",")
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func buildUserResponse(user *entities.User) domain.UserResponse {
	res := domain.UserResponse{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Email:              user.Email,
		IsVerified:         user.IsVerified,
		DietaryPreferences: splitList(user.DietaryPreferences),
		Allergies:          splitList(user.Allergies),
		PreferredCuisines:  splitList(user.PreferredCuisines),
		AvatarURL:          user.AvatarURL,
		LastLogin:          user.LastLogin,
	}
	if user.HouseholdID != nil {
		res.HouseholdID = user.HouseholdID.String()
	}
	return res
}
