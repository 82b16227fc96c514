// Package store is the persistence layer. Services depend on the interfaces;
// GormStore is the only implementation.
package store

import (
	"context"
	"errors"

	"pandas-platform/backend/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	// CreateUser returns ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
}

type ModuleStore interface {
	ListModules(ctx context.Context) ([]models.Module, error)
	FindModule(ctx context.Context, id string) (*models.Module, error)
	// SeedModules inserts modules that are not present yet and leaves existing rows untouched.
	SeedModules(ctx context.Context, modules []models.Module) error
}

type ProgressStore interface {
	// UpsertProgress writes p keyed on (UserID, ModuleID, TopicID) in one statement
	// and returns the stored row.
	UpsertProgress(ctx context.Context, p *models.Progress) (*models.Progress, error)
	// ListUserProgress returns the user's rows left-joined with modules, newest update first.
	ListUserProgress(ctx context.Context, userID uint) ([]models.ProgressWithModule, error)
	// ListModuleProgress returns the user's rows for one module joined with it, newest update first.
	ListModuleProgress(ctx context.Context, userID uint, moduleID string) ([]models.ProgressWithModule, error)
}

type Store interface {
	UserStore
	ModuleStore
	ProgressStore
	Ping(ctx context.Context) error
	Driver() string
}
