// Package impl contains the application-specific business rules implementations.
package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ChannelProfileRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ChannelProfileRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadProfile fetches the user's channel profile.
func (srv *profileService) LoadProfile(ctx context.Context, user *entity.User) (*entity.ChannelProfile, error) {
	if user == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("no user selected")
	}

	if !user.HasProfile() {
		empty := entity.EmptyChannelProfile()

		return &empty, nil
	}

	profile, err := srv.profileRepo.FindByID(ctx, *user.MessengerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load channel profile %d", *user.MessengerID)
	}

	normalized := profile.Normalized()

	return &normalized, nil
}

// ParseChannelValue validates operator input as a JSON object, keeping the
// text as entered so numbers are never re-encoded.
func (srv *profileService) ParseChannelValue(raw string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(raw))

	switch {
	case len(trimmed) == 0:
		return nil, domainerrors.ErrInvalidFormat.WithDetails("value is empty")
	case !json.Valid(trimmed):
		return nil, domainerrors.ErrInvalidFormat.WithDetails("value is not valid JSON")
	case trimmed[0] != '{':
		return nil, domainerrors.ErrInvalidFormat.WithDetails("value must be an object")
	}

	return json.RawMessage(trimmed), nil
}

// SaveChannel writes one channel back to the backend.
func (srv *profileService) SaveChannel(ctx context.Context, input usecase.SaveChannelInput) (*usecase.SaveChannelOutput, error) {
	// 1. Parse first; a bad value never reaches the backend
	value, err := srv.ParseChannelValue(input.Raw)
	if err != nil {
		return nil, err
	}

	if input.User == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("no user selected")
	}
	user := input.User

	// 2. Replace only the edited channel
	payload, err := input.Loaded.With(input.Channel, value)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	// 3. Existing profile: a single write
	if user.HasProfile() {
		payload.ID = *user.MessengerID

		saved, err := srv.profileRepo.Update(ctx, payload.ID, payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update channel profile %d", payload.ID)
		}

		srv.log(ctx).Info("Channel profile updated",
			slog.Int64("userID", user.ID),
			slog.Int64("profileID", payload.ID),
			slog.String("channel", input.Channel.String()),
		)

		return &usecase.SaveChannelOutput{User: user, Profile: saved.Normalized()}, nil
	}

	// 4. No profile yet: create it, then link it to the user
	created, err := srv.profileRepo.Create(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create channel profile")
	}
	profile := created.Normalized()

	linked, err := srv.LinkProfile(ctx, user, profile.ID)
	if err != nil {
		srv.log(ctx).Warn("Channel profile created but not linked",
			slog.Int64("userID", user.ID),
			slog.Int64("profileID", profile.ID),
			slog.Any("error", err),
		)

		return &usecase.SaveChannelOutput{User: user, Profile: profile},
			domainerrors.NewPartialLinkError(profile.ID, user.ID, err)
	}

	srv.log(ctx).Info("Channel profile created and linked",
		slog.Int64("userID", user.ID),
		slog.Int64("profileID", profile.ID),
		slog.String("channel", input.Channel.String()),
	)

	return &usecase.SaveChannelOutput{User: linked, Profile: profile}, nil
}

// LinkProfile attaches profileID to the user. The backend requires the full
// record on update, so every other field is sent back unchanged.
func (srv *profileService) LinkProfile(ctx context.Context, user *entity.User, profileID int64) (*entity.User, error) {
	if user == nil || profileID <= 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("a user and a profile id are required to link")
	}

	updated, err := srv.userRepo.Update(ctx, user.ID, entity.InputFrom(user.WithMessengerID(profileID)))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to link profile %d to user %d", profileID, user.ID)
	}

	return updated, nil
}
