package impl

import (
	"context"
	"testing"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	mockRepo "notifyconsole/internal/mocks/repository"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectoryService(t *testing.T) (usecase.DirectoryUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewDirectoryService(DirectoryServiceParams{
		UserRepo: userRepo,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	}), userRepo
}

func usersOf(n int) []*entity.User {
	users := make([]*entity.User, n)
	for i := range users {
		users[i] = &entity.User{ID: int64(i + 1)}
	}

	return users
}

func TestDirectoryService_ListUsers_Window(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		pageSize    int
		returned    int
		wantQuery   string
		wantHasNext bool
	}{
		{name: "first page full", page: 1, pageSize: 10, returned: 10, wantQuery: "skip=0&limit=10", wantHasNext: true},
		{name: "third page full", page: 3, pageSize: 10, returned: 10, wantQuery: "skip=20&limit=10", wantHasNext: true},
		{name: "short page", page: 2, pageSize: 25, returned: 7, wantQuery: "skip=25&limit=25", wantHasNext: false},
		{name: "empty page", page: 5, pageSize: 10, returned: 0, wantQuery: "skip=40&limit=10", wantHasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := newTestDirectoryService(t)
			ctx := context.Background()

			userRepo.EXPECT().
				List(ctx, audience.BuildListing(entity.Criteria{}, audience.Window{Skip: (tt.page - 1) * tt.pageSize, Limit: tt.pageSize})).
				RunAndReturn(func(_ context.Context, params audience.Params) ([]*entity.User, error) {
					assert.Equal(t, tt.wantQuery, params.Encode())

					return usersOf(tt.returned), nil
				})

			page, err := svc.ListUsers(ctx, usecase.DirectoryQuery{Page: tt.page, PageSize: tt.pageSize})
			require.NoError(t, err)

			assert.Len(t, page.Users, tt.returned)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.pageSize, page.PageSize)
			assert.Equal(t, tt.wantHasNext, page.HasNext)
		})
	}
}

func TestDirectoryService_ListUsers_CarriesCriteria(t *testing.T) {
	svc, userRepo := newTestDirectoryService(t)
	ctx := context.Background()

	criteria := entity.Criteria{
		HasSubscription: entity.True,
		Subscription:    entity.PackageOf(4),
		Platform:        entity.PlatformWordly,
		SearchTerm:      "ann lee",
		HasMessages:     true,
	}

	var got string
	userRepo.EXPECT().List(ctx, audience.BuildListing(criteria, audience.Window{Skip: 0, Limit: 10})).
		RunAndReturn(func(_ context.Context, params audience.Params) ([]*entity.User, error) {
			got = params.Encode()

			return nil, nil
		})

	_, err := svc.ListUsers(ctx, usecase.DirectoryQuery{Criteria: criteria, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "skip=0&limit=10&search=ann%20lee&has_subscription=true&subscription_id=4&has_messages=true&wordly=true", got)
}

func TestDirectoryService_ListUsers_InvalidWindow(t *testing.T) {
	svc, _ := newTestDirectoryService(t)

	for _, q := range []usecase.DirectoryQuery{
		{Page: 0, PageSize: 10},
		{Page: 1, PageSize: 0},
		{Page: 1, PageSize: 101},
	} {
		_, err := svc.ListUsers(context.Background(), q)
		assertCode(t, err, domainerrors.CodeInvalidArgument)
	}
}

func TestDirectoryService_ListUsers_BackendError(t *testing.T) {
	svc, userRepo := newTestDirectoryService(t)
	ctx := context.Background()

	userRepo.EXPECT().List(ctx, audience.BuildListing(entity.Criteria{}, audience.Window{Limit: 10})).
		Return(nil, domainerrors.NewTransportError(errors.New("refused")))

	page, err := svc.ListUsers(ctx, usecase.DirectoryQuery{Page: 1, PageSize: 10})
	assert.Nil(t, page)
	assertCode(t, err, domainerrors.CodeTransportFailure)
}

func TestDirectoryService_DefaultPageSize(t *testing.T) {
	svc, _ := newTestDirectoryService(t)
	assert.Equal(t, 10, svc.DefaultPageSize())

	bare := NewDirectoryService(DirectoryServiceParams{Logger: newDiscardLogger()})
	assert.Equal(t, fallbackPageSize, bare.DefaultPageSize())
}
