package usecase

import (
	"context"
	"encoding/json"

	"notifyconsole/internal/domain/entity"
)

// SaveChannelInput is one edit of a single channel of a user's profile.
type SaveChannelInput struct {
	User    *entity.User
	Loaded  entity.ChannelProfile // Profile as it was loaded for editing
	Channel entity.Channel
	Raw     string // Operator-entered JSON object
}

// SaveChannelOutput is the state after a save.
type SaveChannelOutput struct {
	User    *entity.User
	Profile entity.ChannelProfile
}

// ProfileUsecase defines the channel profile editing use cases
type ProfileUsecase interface {
	// LoadProfile returns the user's profile, or an empty one without a
	// backend call when the user has none yet
	LoadProfile(ctx context.Context, user *entity.User) (*entity.ChannelProfile, error)

	// ParseChannelValue accepts only a JSON object
	ParseChannelValue(raw string) (json.RawMessage, error)

	// SaveChannel replaces exactly one channel and persists the profile,
	// creating and linking it when the user has none. When the profile was
	// created but the link failed, it returns a PartialLinkError together
	// with an output carrying the created profile.
	SaveChannel(ctx context.Context, input SaveChannelInput) (*SaveChannelOutput, error)

	// LinkProfile retries only the user write that attaches profileID
	LinkProfile(ctx context.Context, user *entity.User, profileID int64) (*entity.User, error)
}
