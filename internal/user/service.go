package user

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"

	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
	maxUsernameLength = 30
	maxEmailLength    = 254
)

var ErrInternalError = errors.New("internal Server Error")

type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	HashToken        string    `json:"-"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	TwoFactorSecret  string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Service interface {
	Register(username, email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByUsernameOrEmail(usernameOrEmail string) (*User, error)
	RotateHashToken(userID string) (string, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func generateHashToken() (string, error) {
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("could not generate hash token: %v", err)
	}
	return hex.EncodeToString(token), nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func validateUsername(username string, ve *financeErrors.ValidationErrors) {
	if username == "" {
		ve.Add("username", "Username is required.")
		return
	}
	if strings.ContainsFunc(username, unicode.IsSpace) {
		ve.Add("username", "Username cannot contain spaces.")
		return
	}
	if !isAlphanumeric(username) {
		ve.Add("username", "Username must be alphanumeric.")
		return
	}
	if len(username) > maxUsernameLength {
		ve.Add("username", fmt.Sprintf("Username cannot be longer than %d characters.", maxUsernameLength))
	}
}

func validateEmail(email string, ve *financeErrors.ValidationErrors) {
	if email == "" {
		ve.Add("email", "Email is required.")
		return
	}
	if err := checkmail.ValidateFormat(email); err != nil || len(email) > maxEmailLength {
		ve.Add("email", "Enter a valid email address.")
	}
}

func validatePassword(password string, ve *financeErrors.ValidationErrors) {
	if password == "" {
		ve.Add("password", "Password is required.")
		return
	}
	if len(password) < minPasswordLength {
		ve.Add("password", fmt.Sprintf("Password must be at least %d characters long.", minPasswordLength))
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		ve.Add("password", "Password must contain at least one number.")
	}
	if !strings.ContainsFunc(password, unicode.IsLetter) {
		ve.Add("password", "Password must contain at least one letter.")
	}
}

// Register validates every field before touching storage so that a bad
// request reports all of its problems at once.
func (s *service) Register(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	ve := financeErrors.NewValidationErrors()
	validateUsername(username, ve)
	validateEmail(email, ve)
	validatePassword(password, ve)
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	existingUser, err := s.repo.userExistsByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}
	if existingUser != nil {
		if strings.EqualFold(existingUser.Username, username) {
			ve.Add("username", "A user with this username already exists.")
		}
		if existingUser.Email == email {
			ve.Add("email", "A user with this email already exists.")
		}
		if err := ve.ErrOrNil(); err != nil {
			return nil, err
		}
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	hashToken, err := generateHashToken()
	if err != nil {
		return nil, ErrInternalError
	}

	newUser := &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		HashToken:    hashToken,
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, ErrInternalError
	}
	return newUser, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByUsernameOrEmail(usernameOrEmail string) (*User, error) {
	return s.repo.getUserByUsernameOrEmail(usernameOrEmail)
}

// RotateHashToken replaces the token refresh JWTs are bound to, which
// invalidates every refresh token issued before the rotation.
func (s *service) RotateHashToken(userID string) (string, error) {
	newHashToken, err := generateHashToken()
	if err != nil {
		return "", ErrInternalError
	}
	if err := s.repo.updateHashToken(userID, newHashToken); err != nil {
		return "", ErrInternalError
	}
	return newHashToken, nil
}
