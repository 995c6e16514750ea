// Package repository defines the contracts for the records the console reads
// and writes. The notification backend is the system of record; these
// interfaces keep the application layer independent of how it is reached.
package repository

import (
	"context"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
)

// UserRepository defines the operations on end users.
type UserRepository interface {
	// List returns one directory page selected by params (skip, limit and filters).
	List(ctx context.Context, params audience.Params) ([]*entity.User, error)

	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create registers a new user.
	Create(ctx context.Context, input entity.UserInput) (*entity.User, error)

	// Update replaces the writable fields of a user.
	Update(ctx context.Context, id int64, input entity.UserInput) (*entity.User, error)
}
