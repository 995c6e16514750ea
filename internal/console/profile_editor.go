package console

import (
	"context"
	"sync"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
)

// EditorState is what the profile editor currently shows.
type EditorState struct {
	User    *entity.User          `json:"user,omitempty"`
	Profile entity.ChannelProfile `json:"profile"`

	// PendingLink is a created profile not yet attached to User
	PendingLink int64 `json:"pending_link_profile_id,omitempty"`
}

// ProfileEditor edits the channel profile of one selected user at a time.
// After a partial link failure it remembers the created profile, so the next
// save or RetryLink only redoes the link and never creates a second profile.
type ProfileEditor struct {
	profiles usecase.ProfileUsecase
	seq      Sequencer

	saving sync.Mutex // serializes writes
	mu     sync.Mutex
	user   *entity.User
	loaded entity.ChannelProfile
	// pending is the id of a created but unlinked profile
	pending int64
}

func NewProfileEditor(profiles usecase.ProfileUsecase) *ProfileEditor {
	return &ProfileEditor{
		profiles: profiles,
		loaded:   entity.EmptyChannelProfile(),
	}
}

// Select loads user's profile into the editor. Selecting another user
// before the load completes drops this one with ErrSuperseded.
// Re-selecting a user that still waits for a link keeps the created profile
// and the pending link.
func (e *ProfileEditor) Select(ctx context.Context, user *entity.User) (*EditorState, error) {
	if user == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("no user selected")
	}
	token := e.seq.Next()

	profile, err := e.profiles.LoadProfile(ctx, user)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.seq.IsCurrent(token) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	if e.pending > 0 && e.user != nil && e.user.ID == user.ID && !user.HasProfile() {
		e.user = user

		return e.stateLocked(), nil
	}

	e.user = user
	e.loaded = *profile
	e.pending = 0

	return e.stateLocked(), nil
}

// Save writes one channel for the selected user.
func (e *ProfileEditor) Save(ctx context.Context, channel entity.Channel, raw string) (*EditorState, error) {
	e.saving.Lock()
	defer e.saving.Unlock()

	// Catch bad input before retrying any pending link
	if _, err := e.profiles.ParseChannelValue(raw); err != nil {
		return nil, err
	}

	user, loaded, pending := e.snapshot()
	if user == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("no user selected")
	}

	// 1. Finish a link left over from an earlier partial failure
	if pending > 0 {
		linked, err := e.profiles.LinkProfile(ctx, user, pending)
		if err != nil {
			return e.State(), domainerrors.NewPartialLinkError(pending, user.ID, err)
		}
		user = linked
		e.commit(user.ID, linked, loaded, 0)
	}

	// 2. Save the channel; the user now carries a profile if one was created
	out, err := e.profiles.SaveChannel(ctx, usecase.SaveChannelInput{
		User:    user,
		Loaded:  loaded,
		Channel: channel,
		Raw:     raw,
	})

	var partial *domainerrors.PartialLinkError
	if errors.As(err, &partial) && out != nil {
		e.commit(user.ID, out.User, out.Profile, partial.ProfileID)

		return e.State(), err
	}
	if err != nil {
		return nil, err
	}

	e.commit(user.ID, out.User, out.Profile, 0)

	return &EditorState{User: out.User, Profile: out.Profile}, nil
}

// RetryLink redoes only the link write after a partial failure.
func (e *ProfileEditor) RetryLink(ctx context.Context) (*EditorState, error) {
	e.saving.Lock()
	defer e.saving.Unlock()

	user, loaded, pending := e.snapshot()
	if user == nil || pending == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("no profile is waiting to be linked")
	}

	linked, err := e.profiles.LinkProfile(ctx, user, pending)
	if err != nil {
		return e.State(), domainerrors.NewPartialLinkError(pending, user.ID, err)
	}

	e.commit(user.ID, linked, loaded, 0)

	return &EditorState{User: linked, Profile: loaded}, nil
}

func (e *ProfileEditor) snapshot() (*entity.User, entity.ChannelProfile, int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.user, e.loaded, e.pending
}

// commit applies a write result unless another user was selected meanwhile.
func (e *ProfileEditor) commit(userID int64, user *entity.User, profile entity.ChannelProfile, pending int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.user == nil || e.user.ID != userID {
		return
	}
	e.user = user
	e.loaded = profile
	e.pending = pending
}

// State returns a snapshot of the editor.
func (e *ProfileEditor) State() *EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stateLocked()
}

func (e *ProfileEditor) stateLocked() *EditorState {
	return &EditorState{User: e.user, Profile: e.loaded, PendingLink: e.pending}
}
