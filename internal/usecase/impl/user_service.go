package impl

import (
	"context"
	"log/slog"

	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// detailMessageWindow bounds the message history shown on the detail view
var detailMessageWindow = audience.Window{Skip: 0, Limit: 100}

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
	messageRepo repository.MessageRepository
	profiles    usecase.ProfileUsecase
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PackageRepo repository.PackageRepository
	MessageRepo repository.MessageRepository
	Profiles    usecase.ProfileUsecase
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		packageRepo: params.PackageRepo,
		messageRepo: params.MessageRepo,
		profiles:    params.Profiles,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user %d", id)
	}

	return user, nil
}

// GetDetail loads the user first, since the profile lookup needs its
// messenger_id, then fetches the rest in parallel.
func (srv *userService) GetDetail(ctx context.Context, id int64) (*entity.UserDetail, error) {
	user, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		profile       *entity.ChannelProfile
		messages      []*entity.MessageLog
		subscriptions []*entity.UserSubscription
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = srv.profiles.LoadProfile(gctx, user)

		return err
	})
	g.Go(func() error {
		var err error
		messages, err = srv.messageRepo.ListByUser(gctx, id, detailMessageWindow)

		return errors.Wrap(err, "failed to list messages")
	})
	g.Go(func() error {
		var err error
		subscriptions, err = srv.packageRepo.ListByUser(gctx, id)

		return errors.Wrap(err, "failed to list subscriptions")
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load user detail", slog.Int64("userID", id), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to load detail of user %d", id)
	}

	detail := &entity.UserDetail{
		User:          *user,
		Profile:       *profile,
		Messages:      make([]entity.MessageLog, 0, len(messages)),
		Subscriptions: make([]entity.UserSubscription, 0, len(subscriptions)),
	}
	for _, m := range messages {
		detail.Messages = append(detail.Messages, *m)
	}
	for _, s := range subscriptions {
		detail.Subscriptions = append(detail.Subscriptions, *s)
	}

	return detail, nil
}

func (srv *userService) Create(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	user, err := srv.userRepo.Create(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID))

	return user, nil
}

func (srv *userService) Update(ctx context.Context, id int64, input entity.UserInput) (*entity.User, error) {
	user, err := srv.userRepo.Update(ctx, id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update user %d", id)
	}

	return user, nil
}

func (srv *userService) Messages(ctx context.Context, id int64, window audience.Window) ([]*entity.MessageLog, error) {
	messages, err := srv.messageRepo.ListByUser(ctx, id, window)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list messages of user %d", id)
	}

	return messages, nil
}

func (srv *userService) Subscriptions(ctx context.Context, id int64) ([]*entity.UserSubscription, error) {
	subscriptions, err := srv.packageRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list subscriptions of user %d", id)
	}

	return subscriptions, nil
}
