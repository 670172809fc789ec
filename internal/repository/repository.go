package repository

import (
	"context"

	"github.com/Houeta/restobot/internal/models"
)

// Repository implements record store access on top of a Database.
type Repository struct {
	db Database
}

// Interface defines the record store operations consumed by the HTTP API,
// the notification dispatcher, and the bot. It covers credential checks,
// employee registration and lookup, and task creation.
type Interface interface {
	CheckAccount(ctx context.Context, login, password string) (models.Account, error)
	RegisterUser(ctx context.Context, telegramID, name, role, location string) error
	GetUserByTelegramID(ctx context.Context, telegramID string) (models.Employee, error)
	GetAllUsers(ctx context.Context) ([]models.Employee, error)
	CreateTask(ctx context.Context, task models.Task) (int, error)
	GetTasksByRecipient(ctx context.Context, telegramID string) ([]models.Task, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database) *Repository {
	return &Repository{db: db}
}
