// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
)

// UserUsecase defines the user management use cases
type UserUsecase interface {
	Get(ctx context.Context, id int64) (*entity.User, error)

	// GetDetail loads the user with profile, message history and quiz
	// subscriptions fetched concurrently
	GetDetail(ctx context.Context, id int64) (*entity.UserDetail, error)

	Create(ctx context.Context, input entity.UserInput) (*entity.User, error)

	// Update rewrites the full user record
	Update(ctx context.Context, id int64, input entity.UserInput) (*entity.User, error)

	// Messages lists notifications the backend recorded for the user
	Messages(ctx context.Context, id int64, window audience.Window) ([]*entity.MessageLog, error)

	// Subscriptions lists the quiz packages the user is subscribed to
	Subscriptions(ctx context.Context, id int64) ([]*entity.UserSubscription, error)
}
