package impl

import (
	"context"
	"log/slog"

	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/domain/service"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogWindow covers the whole package catalog in one request
var catalogWindow = audience.Window{Skip: 0, Limit: 1000}

type packageService struct {
	packageRepo repository.PackageRepository
	cache       service.PackageCache
	logger      *slog.Logger
}

// PackageServiceParams holds dependencies for PackageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
	Cache       service.PackageCache
	Logger      *slog.Logger
}

func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		packageRepo: params.PackageRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *packageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List serves the catalog from cache, refilling it on a miss. Cache errors
// only cost a backend round trip.
func (srv *packageService) List(ctx context.Context) ([]*entity.Package, error) {
	packages, found, err := srv.cache.GetCatalog(ctx)
	if err != nil {
		srv.log(ctx).Warn("Package cache read failed", slog.Any("error", err))
	}
	if found {
		return packages, nil
	}

	packages, err = srv.packageRepo.List(ctx, catalogWindow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	if err := srv.cache.SetCatalog(ctx, packages); err != nil {
		srv.log(ctx).Warn("Package cache write failed", slog.Any("error", err))
	}

	return packages, nil
}

func (srv *packageService) Get(ctx context.Context, id int64) (*entity.Package, error) {
	pkg, err := srv.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get package %d", id)
	}

	return pkg, nil
}

func (srv *packageService) Create(ctx context.Context, input entity.PackageInput) (*entity.Package, error) {
	pkg, err := srv.packageRepo.Create(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create package")
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Package created", slog.Int64("packageID", pkg.ID), slog.String("name", pkg.Name))

	return pkg, nil
}

// Assign changes the package's subscriber count, so the catalog is dropped too.
func (srv *packageService) Assign(ctx context.Context, assignment entity.Assignment) (*entity.SubscriptionGrant, error) {
	grant, err := srv.packageRepo.Assign(ctx, assignment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign package %q to %q", assignment.PackageName, assignment.Username)
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Package assigned",
		slog.Int64("userID", grant.UserID),
		slog.Int64("packageID", grant.SubscriptionID),
	)

	return grant, nil
}

func (srv *packageService) invalidate(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Package cache invalidation failed", slog.Any("error", err))
	}
}
