package auth

import (
	"database/sql"
	"errors"
	"fmt"
)

// UserRepository covers the two-factor columns of the users table. Everything
// else about users lives in the user package.
type UserRepository interface {
	SaveTwoFactorSecret(userID, secret string) error
	GetTwoFactorSecret(userID string) (string, error)
	EnableTwoFactor(userID string) error
	DisableTwoFactor(userID string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) SaveTwoFactorSecret(userID, secret string) error {
	query := `
		UPDATE users
		SET two_factor_secret = $2,
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(query, userID, secret)
	if err != nil {
		return fmt.Errorf("could not save two-factor secret: %v", err)
	}
	return nil
}

func (r *userRepository) GetTwoFactorSecret(userID string) (string, error) {
	query := `
		SELECT two_factor_secret
		FROM users
		WHERE id = $1
	`
	var secret sql.NullString
	err := r.db.QueryRow(query, userID).Scan(&secret)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("could not retrieve two-factor secret: %v", err)
	}
	if !secret.Valid || secret.String == "" {
		return "", ErrUser2FANotEnabled
	}
	return secret.String, nil
}

func (r *userRepository) EnableTwoFactor(userID string) error {
	query := `
		UPDATE users
		SET two_factor_enabled = TRUE,
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("could not enable two-factor authentication: %v", err)
	}
	return nil
}

func (r *userRepository) DisableTwoFactor(userID string) error {
	query := `
		UPDATE users
		SET two_factor_enabled = FALSE,
		    two_factor_secret = '',
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("could not disable two-factor authentication: %v", err)
	}
	return nil
}
