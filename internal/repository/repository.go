package repository

import (
	"context"
	"database/sql"

	"autfiles/internal/models"
	"autfiles/internal/repository/db"
)

// Users persists credential records. GetByEmail returns (nil, nil) when no
// record exists so callers can distinguish "not found" from store failure.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Repository struct {
	Users Users
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(database),
	}
}

// InitDB opens the SQLite store and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
