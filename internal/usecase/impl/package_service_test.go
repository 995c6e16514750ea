package impl

import (
	"context"
	"net/http"
	"testing"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	mockRepo "notifyconsole/internal/mocks/repository"
	mockSvc "notifyconsole/internal/mocks/service"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type packageServiceFixtures struct {
	service     usecase.PackageUsecase
	packageRepo *mockRepo.MockPackageRepository
	cache       *mockSvc.MockPackageCache
}

func createTestPackageService(t *testing.T) packageServiceFixtures {
	packageRepo := mockRepo.NewMockPackageRepository(t)
	cache := mockSvc.NewMockPackageCache(t)

	return packageServiceFixtures{
		service: NewPackageService(PackageServiceParams{
			PackageRepo: packageRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		}),
		packageRepo: packageRepo,
		cache:       cache,
	}
}

var catalog = []*entity.Package{
	{ID: 1, Name: "Daily", Type: entity.PackageDaily, Time: entity.Length1Min},
	{ID: 2, Name: "Gold", Type: entity.PackageMonthly, Time: entity.Length30Min},
}

func TestPackageService_List_CacheHit(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetCatalog(ctx).Return(catalog, true, nil)

	packages, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, packages)
}

func TestPackageService_List_MissFillsCache(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetCatalog(ctx).Return(nil, false, nil)
	fx.packageRepo.EXPECT().List(ctx, catalogWindow).Return(catalog, nil)
	fx.cache.EXPECT().SetCatalog(ctx, catalog).Return(nil)

	packages, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, packages, 2)
}

func TestPackageService_List_CacheErrorsAreNotFatal(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetCatalog(ctx).Return(nil, false, errors.New("redis down"))
	fx.packageRepo.EXPECT().List(ctx, catalogWindow).Return(catalog, nil)
	fx.cache.EXPECT().SetCatalog(ctx, catalog).Return(errors.New("redis down"))

	packages, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, packages)
}

func TestPackageService_List_BackendError(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetCatalog(ctx).Return(nil, false, nil)
	fx.packageRepo.EXPECT().List(ctx, catalogWindow).Return(nil, domainerrors.NewTransportError(errors.New("refused")))

	_, err := fx.service.List(ctx)
	assertCode(t, err, domainerrors.CodeTransportFailure)
}

func TestPackageService_Create_Invalidates(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	input := entity.PackageInput{Name: "Silver", Type: entity.PackageWeekly, Time: entity.Length5Min}

	fx.packageRepo.EXPECT().Create(ctx, input).Return(&entity.Package{ID: 3, Name: "Silver"}, nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)

	pkg, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pkg.ID)
}

func TestPackageService_Create_RejectedKeepsCache(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	input := entity.PackageInput{Name: "Gold"}

	fx.packageRepo.EXPECT().Create(ctx, input).
		Return(nil, domainerrors.NewRejectedError(http.StatusBadRequest, "Subscription with this name already exists"))

	_, err := fx.service.Create(ctx, input)
	assertCode(t, err, domainerrors.CodeRejected)
	fx.cache.AssertNotCalled(t, "Invalidate")
}

func TestPackageService_Assign(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	assignment := entity.Assignment{Username: "ann", PackageName: "Gold"}

	fx.packageRepo.EXPECT().Assign(ctx, assignment).
		Return(&entity.SubscriptionGrant{ID: 5, UserID: 7, SubscriptionID: 2}, nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	grant, err := fx.service.Assign(ctx, assignment)
	require.NoError(t, err)
	assert.Equal(t, int64(2), grant.SubscriptionID)
}

func TestPackageService_Get(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().FindByID(ctx, int64(9)).
		Return(nil, domainerrors.NewRejectedError(http.StatusNotFound, "Subscription not found"))

	_, err := fx.service.Get(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
