package repository

import (
	"context"

	"notifyconsole/internal/domain/entity"
)

// ChannelProfileRepository defines the operations on per-channel contact profiles.
type ChannelProfileRepository interface {
	// FindByID retrieves a profile by id.
	FindByID(ctx context.Context, id int64) (*entity.ChannelProfile, error)

	// Create stores a new profile and returns it with its assigned id.
	Create(ctx context.Context, profile entity.ChannelProfile) (*entity.ChannelProfile, error)

	// Update overwrites all four channels of an existing profile.
	Update(ctx context.Context, id int64, profile entity.ChannelProfile) (*entity.ChannelProfile, error)
}
