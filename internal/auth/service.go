package auth

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/lmalecki/FinanceTracker/internal/user"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInternalError         = errors.New("internal Server Error")
	ErrTwoFactorCodeRequired = errors.New("two-factor authentication code required")
	ErrInvalid2FACode        = errors.New("2fa code is invalid")
	ErrUser2FAAlreadyEnabled = errors.New("2fa auth already enabled")
	ErrUser2FANotEnabled     = errors.New("two factor auth is not enabled")
)

type Service interface {
	Login(usernameOrEmail, password, twoFactorCode string) (*user.User, string, string, error)
	IssueTokens(userID, hashToken string) (string, string, error)
	RefreshAccessToken(userID string) (string, string, error)
	RegisterTwoFactor(userID string) (string, error)
	VerifyTwoFactorRegistration(userID, code string) error
	DisableTwoFactorAuth(userID, code string) error
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
	JWTRefreshTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo          UserRepository
	userService   user.Service
	jwtManager    JWTManagerInterface
	authenticator *Authenticator
}

func NewAuthService(repo UserRepository, userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		repo:          repo,
		userService:   userService,
		jwtManager:    jwtManager,
		authenticator: &Authenticator{},
	}
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

// Login authenticates by username or email. When the account has two-factor
// authentication enabled the TOTP code must come with the same request.
func (s *service) Login(usernameOrEmail, password, twoFactorCode string) (*user.User, string, string, error) {
	existingUser, err := s.userService.GetUserByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return nil, "", "", ErrInvalidCredentials
	}

	if existingUser.TwoFactorEnabled {
		if twoFactorCode == "" {
			return nil, "", "", ErrTwoFactorCodeRequired
		}
		secret, err := s.repo.GetTwoFactorSecret(existingUser.ID)
		if err != nil {
			return nil, "", "", ErrInternalError
		}
		if !s.authenticator.VerifyCode(secret, twoFactorCode) {
			return nil, "", "", ErrInvalid2FACode
		}
	}

	accessToken, refreshToken, err := s.IssueTokens(existingUser.ID, existingUser.HashToken)
	if err != nil {
		return nil, "", "", err
	}
	return existingUser, accessToken, refreshToken, nil
}

func (s *service) IssueTokens(userID, hashToken string) (string, string, error) {
	accessToken, err := s.jwtManager.GenerateAccessJWT(userID, defaultJWTDuration)
	if err != nil {
		return "", "", ErrInternalError
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(userID, hashToken, defaultJWTRefreshDuration)
	if err != nil {
		return "", "", ErrInternalError
	}
	return accessToken, refreshToken, nil
}

// RefreshAccessToken requests are already validated by the refresh token
// middleware.
func (s *service) RefreshAccessToken(userID string) (string, string, error) {
	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", ErrInternalError
	}
	return s.IssueTokens(userID, existingUser.HashToken)
}

// RegisterTwoFactor stores a fresh TOTP secret and returns the otpauth URI.
// The secret stays inactive until VerifyTwoFactorRegistration confirms the
// user can produce valid codes.
func (s *service) RegisterTwoFactor(userID string) (string, error) {
	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternalError
	}

	if existingUser.TwoFactorEnabled {
		return "", ErrUser2FAAlreadyEnabled
	}

	otpURI, secret, err := s.authenticator.GenerateSecret(existingUser.Email)
	if err != nil {
		return "", ErrInternalError
	}
	if err := s.repo.SaveTwoFactorSecret(userID, secret); err != nil {
		return "", ErrInternalError
	}
	return otpURI, nil
}

func (s *service) VerifyTwoFactorRegistration(userID, code string) error {
	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternalError
	}

	if existingUser.TwoFactorEnabled {
		return ErrUser2FAAlreadyEnabled
	}

	secret, err := s.repo.GetTwoFactorSecret(userID)
	if err != nil {
		if errors.Is(err, ErrUser2FANotEnabled) {
			return ErrUser2FANotEnabled
		}
		return ErrInternalError
	}

	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalid2FACode
	}

	if err := s.repo.EnableTwoFactor(userID); err != nil {
		return ErrInternalError
	}
	return nil
}

func (s *service) DisableTwoFactorAuth(userID, code string) error {
	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if !existingUser.TwoFactorEnabled {
		return ErrUser2FANotEnabled
	}

	secret, err := s.repo.GetTwoFactorSecret(userID)
	if err != nil {
		return ErrInternalError
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalid2FACode
	}

	if err := s.repo.DisableTwoFactor(userID); err != nil {
		return ErrInternalError
	}
	return nil
}
