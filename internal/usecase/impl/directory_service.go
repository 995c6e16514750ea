package impl

import (
	"context"
	"fmt"
	"log/slog"

	"notifyconsole/config"
	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackPageSize = 10

type directoryService struct {
	userRepo        repository.UserRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	srv := &directoryService{
		userRepo:        params.UserRepo,
		defaultPageSize: fallbackPageSize,
		logger:          params.Logger,
	}
	if params.Config != nil {
		if size := params.Config.Directory.DefaultPageSize; size > 0 {
			srv.defaultPageSize = size
		}
		srv.maxPageSize = params.Config.Directory.MaxPageSize
	}

	return srv
}

func (srv *directoryService) DefaultPageSize() int {
	return srv.defaultPageSize
}

// ListUsers fetches one page. HasNext only says the page came back full;
// the backend reports no total.
func (srv *directoryService) ListUsers(ctx context.Context, query usecase.DirectoryQuery) (*usecase.DirectoryPage, error) {
	if query.Page < 1 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("page must be at least 1, got %d", query.Page))
	}
	if query.PageSize < 1 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("page size must be at least 1, got %d", query.PageSize))
	}
	if srv.maxPageSize > 0 && query.PageSize > srv.maxPageSize {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("page size must not exceed %d", srv.maxPageSize))
	}

	window := audience.Window{
		Skip:  (query.Page - 1) * query.PageSize,
		Limit: query.PageSize,
	}

	users, err := srv.userRepo.List(ctx, audience.BuildListing(query.Criteria, window))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list users on page %d", query.Page)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Directory page fetched",
		slog.Int("page", query.Page),
		slog.Int("pageSize", query.PageSize),
		slog.Int("count", len(users)),
	)

	return &usecase.DirectoryPage{
		Users:    users,
		Page:     query.Page,
		PageSize: query.PageSize,
		HasNext:  len(users) == query.PageSize,
	}, nil
}
