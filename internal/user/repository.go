package user

import (
	"database/sql"
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getUserByID(id string) (*User, error)
	getUserByUsernameOrEmail(usernameOrEmail string) (*User, error)
	userExistsByUsernameOrEmail(username, email string) (*User, error)
	updateHashToken(userID, hashToken string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

const userColumns = "id, username, email, password_hash, hash_token, two_factor_enabled, COALESCE(two_factor_secret, ''), created_at, updated_at"

func scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.HashToken,
		&user.TwoFactorEnabled, &user.TwoFactorSecret, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (username, email, password_hash, hash_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash, user.HashToken).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(query, id))
}

func (r *userRepository) getUserByUsernameOrEmail(usernameOrEmail string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1 OR email = LOWER($1)`, userColumns)
	return scanUser(r.db.QueryRow(query, usernameOrEmail))
}

func (r *userRepository) userExistsByUsernameOrEmail(username, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(username) = LOWER($1) OR email = $2`, userColumns)
	return scanUser(r.db.QueryRow(query, username, email))
}

func (r *userRepository) updateHashToken(userID, hashToken string) error {
	query := `
		UPDATE users
		SET hash_token = $2,
		    updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.Exec(query, userID, hashToken)
	if err != nil {
		return fmt.Errorf("could not update hash token: %v", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
