package console

import (
	"context"
	"testing"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	mockUsecase "notifyconsole/internal/mocks/usecase"
	"notifyconsole/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pageOf(q usecase.DirectoryQuery, n int) *usecase.DirectoryPage {
	users := make([]*entity.User, n)
	for i := range users {
		users[i] = &entity.User{ID: int64((q.Page-1)*q.PageSize + i + 1)}
	}

	return &usecase.DirectoryPage{Users: users, Page: q.Page, PageSize: q.PageSize, HasNext: n == q.PageSize}
}

func newTestPaginator(t *testing.T) (*Paginator, *mockUsecase.MockDirectoryUsecase) {
	directory := mockUsecase.NewMockDirectoryUsecase(t)

	return NewPaginator(directory, 10), directory
}

func TestPaginator_DefaultPageSize(t *testing.T) {
	directory := mockUsecase.NewMockDirectoryUsecase(t)
	directory.EXPECT().DefaultPageSize().Return(25)

	p := NewPaginator(directory, 0)
	assert.Equal(t, 25, p.State().PageSize)
	assert.Equal(t, 1, p.State().Page)
}

func TestPaginator_NextPrevGoTo(t *testing.T) {
	p, directory := newTestPaginator(t)
	ctx := context.Background()

	directory.EXPECT().ListUsers(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, q usecase.DirectoryQuery) (*usecase.DirectoryPage, error) {
			return pageOf(q, q.PageSize), nil
		})

	assert.False(t, p.Prev(), "never below page 1")

	_, err := p.Fetch(ctx)
	require.NoError(t, err)
	assert.True(t, p.Next())
	assert.Equal(t, 2, p.State().Page)

	page, err := p.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Users[0].ID)

	require.NoError(t, p.GoTo(5))
	assert.Equal(t, 5, p.State().Page)
	assert.True(t, p.Prev())
	assert.Equal(t, 4, p.State().Page)

	assertInvalid(t, p.GoTo(0))
}

func TestPaginator_NextStopsOnShortPage(t *testing.T) {
	p, directory := newTestPaginator(t)
	ctx := context.Background()

	directory.EXPECT().ListUsers(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, q usecase.DirectoryQuery) (*usecase.DirectoryPage, error) {
			return pageOf(q, 3), nil
		})

	page, err := p.Fetch(ctx)
	require.NoError(t, err)
	assert.False(t, page.HasNext)
	assert.False(t, p.Next())
	assert.Equal(t, 1, p.State().Page)
}

func TestPaginator_ChangesResetToFirstPage(t *testing.T) {
	p, _ := newTestPaginator(t)

	require.NoError(t, p.GoTo(4))
	assert.True(t, p.SetSearch("ann"))
	assert.Equal(t, 1, p.State().Page)
	assert.Equal(t, "ann", p.State().Criteria.SearchTerm)

	require.NoError(t, p.GoTo(4))
	assert.False(t, p.SetSearch(" ann "), "same term is not a change")
	assert.Equal(t, 4, p.State().Page)

	assert.True(t, p.SetFilter(entity.Criteria{HasSubscription: entity.False, SearchTerm: "ignored"}))
	state := p.State()
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, entity.False, state.Criteria.HasSubscription)
	assert.Equal(t, "ann", state.Criteria.SearchTerm, "search is kept apart from the filter")

	require.NoError(t, p.GoTo(3))
	assert.False(t, p.SetFilter(entity.Criteria{HasSubscription: entity.False}))
	assert.Equal(t, 3, p.State().Page)

	changed, err := p.SetPageSize(25)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, p.State().Page)
	assert.Equal(t, 25, p.State().PageSize)

	_, err = p.SetPageSize(0)
	assertInvalid(t, err)
}

func TestPaginator_FetchSupersededByNewerFetch(t *testing.T) {
	p, directory := newTestPaginator(t)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})

	directory.EXPECT().ListUsers(ctx, mock.MatchedBy(func(q usecase.DirectoryQuery) bool { return q.Criteria.SearchTerm == "" })).
		RunAndReturn(func(_ context.Context, q usecase.DirectoryQuery) (*usecase.DirectoryPage, error) {
			close(started)
			<-release

			return pageOf(q, 10), nil
		}).Once()
	directory.EXPECT().ListUsers(ctx, mock.MatchedBy(func(q usecase.DirectoryQuery) bool { return q.Criteria.SearchTerm == "bo" })).
		RunAndReturn(func(_ context.Context, q usecase.DirectoryQuery) (*usecase.DirectoryPage, error) {
			return pageOf(q, 2), nil
		}).Once()

	stale := make(chan error, 1)
	go func() {
		_, err := p.Fetch(ctx)
		stale <- err
	}()
	<-started

	p.SetSearch("bo")
	latest, err := p.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, latest.Users, 2)

	close(release)
	assert.ErrorIs(t, <-stale, ErrSuperseded)

	// The stale result never replaced the current page
	assert.Same(t, latest, p.State().Current)
}

func TestPaginator_FetchError(t *testing.T) {
	p, directory := newTestPaginator(t)
	ctx := context.Background()

	directory.EXPECT().ListUsers(ctx, mock.Anything).Return(nil, domainerrors.NewTransportError(errors.New("refused")))

	_, err := p.Fetch(ctx)
	assert.Equal(t, domainerrors.CodeTransportFailure, domainerrors.Code(err))
	assert.Nil(t, p.State().Current)
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeInvalidArgument, domainerrors.Code(err))
}
