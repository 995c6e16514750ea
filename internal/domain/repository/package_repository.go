package repository

import (
	"context"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
)

// PackageRepository defines the operations on subscription packages.
type PackageRepository interface {
	List(ctx context.Context, window audience.Window) ([]*entity.Package, error)

	FindByID(ctx context.Context, id int64) (*entity.Package, error)

	Create(ctx context.Context, input entity.PackageInput) (*entity.Package, error)

	// Assign subscribes a user to a package, both addressed by name.
	Assign(ctx context.Context, assignment entity.Assignment) (*entity.SubscriptionGrant, error)

	// ListByUser returns the packages a user is subscribed to.
	ListByUser(ctx context.Context, userID int64) ([]*entity.UserSubscription, error)
}
