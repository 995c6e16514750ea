package usecase

import (
	"context"

	"notifyconsole/internal/domain/entity"
)

// PackageUsecase defines the subscription package catalog use cases
type PackageUsecase interface {
	// List returns the whole catalog, served from cache when possible
	List(ctx context.Context) ([]*entity.Package, error)

	Get(ctx context.Context, id int64) (*entity.Package, error)

	Create(ctx context.Context, input entity.PackageInput) (*entity.Package, error)

	// Assign subscribes a user to a package by username and package name
	Assign(ctx context.Context, assignment entity.Assignment) (*entity.SubscriptionGrant, error)
}
