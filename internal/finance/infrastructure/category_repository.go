package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, user_id, name, type) VALUES ($1, $2, $3, $4)`,
		category.ID, category.UserID, category.Name, category.Type,
	)
	if isPgError(err, pgUniqueViolation) {
		return financeErrors.NewConflictError("You already have a category with this name.")
	}
	return err
}

func (r *CategoryRepository) FindByUser(userID, categoryType string) ([]domain.Category, error) {
	query := `SELECT id, user_id, name, type FROM categories WHERE user_id = $1`
	args := []interface{}{userID}

	if categoryType != "" {
		query += ` AND type = $2`
		args = append(args, categoryType)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(categoryID, userID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, type FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByIDAnyOwner(categoryID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, type FROM categories WHERE id = $1`,
		categoryID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByName(userID, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(
			SELECT 1 FROM categories
			WHERE user_id = $1 AND LOWER(name) = LOWER($2) AND id::text <> $3
		)`,
		userID, name, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) Update(category domain.Category) error {
	result, err := r.db.Exec(
		`UPDATE categories SET name = $1, type = $2 WHERE id = $3 AND user_id = $4`,
		category.Name, category.Type, category.ID, category.UserID,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return financeErrors.NewConflictError("You already have a category with this name.")
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(categoryID, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return financeErrors.NewConflictError("Cannot delete a category that is referenced by transactions.")
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}
