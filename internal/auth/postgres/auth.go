package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/frahmantamala/inventory-tracker/internal"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// GetCredentialsForUsername returns the stored hash plus the identity the
// session will carry. An unknown username maps to ErrUserNotFound so the
// service can tell it apart from a store failure.
func (r *Repository) GetCredentialsForUsername(username string) (string, int64, string, error) {
	var passwordHash string
	var userID int64
	var role string
	query := `SELECT id, password_hash, role FROM users WHERE username = ?`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&userID, &passwordHash, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, "", internal.ErrUserNotFound
		}
		return "", 0, "", fmt.Errorf("query credentials: %w", err)
	}
	return passwordHash, userID, role, nil
}
