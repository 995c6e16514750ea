package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"notifyconsole/config"
	"notifyconsole/internal/console"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	mockUsecase "notifyconsole/internal/mocks/usecase"
	"notifyconsole/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	e         *echo.Echo
	store     *console.Store
	users     *mockUsecase.MockUserUsecase
	profiles  *mockUsecase.MockProfileUsecase
	directory *mockUsecase.MockDirectoryUsecase
}

func newSessionFixture(t *testing.T) *sessionFixture {
	return newLimitedSessionFixture(t, 0)
}

func newLimitedSessionFixture(t *testing.T, maxSessions int) *sessionFixture {
	f := &sessionFixture{
		e:         newTestEcho(),
		users:     mockUsecase.NewMockUserUsecase(t),
		profiles:  mockUsecase.NewMockProfileUsecase(t),
		directory: mockUsecase.NewMockDirectoryUsecase(t),
	}
	f.directory.EXPECT().DefaultPageSize().Return(10).Maybe()

	f.store = console.NewStore(console.StoreParams{
		Config:    &config.Config{Session: config.SessionConfig{MaxSessions: maxSessions}},
		Directory: f.directory,
		Profiles:  f.profiles,
		Logger:    newDiscardLogger(),
	})

	h := NewSessionHandler(SessionHandlerParams{
		Sessions: f.store,
		UserUC:   f.users,
		Logger:   newDiscardLogger(),
	})
	f.e.POST("/sessions", h.CreateSession)
	f.e.GET("/sessions/:id", h.GetSession)
	f.e.DELETE("/sessions/:id", h.DeleteSession)
	f.e.PATCH("/sessions/:id/directory", h.UpdateDirectory)
	f.e.POST("/sessions/:id/editor", h.SelectUser)
	f.e.PUT("/sessions/:id/editor/:channel", h.SaveChannel)
	f.e.POST("/sessions/:id/editor/link", h.RetryLink)

	return f
}

func (f *sessionFixture) createSession(t *testing.T) string {
	t.Helper()

	rec := serve(f.e, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view console.SessionView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	require.NotEmpty(t, view.ID)

	return view.ID
}

func fullPage(page, size int) *usecase.DirectoryPage {
	users := make([]*entity.User, size)
	for i := range users {
		users[i] = &entity.User{ID: int64((page-1)*size + i + 1)}
	}

	return &usecase.DirectoryPage{Users: users, Page: page, PageSize: size, HasNext: true}
}

func TestSessionHandler_Lifecycle(t *testing.T) {
	f := newSessionFixture(t)
	id := f.createSession(t)

	assert.Equal(t, http.StatusOK, serve(f.e, http.MethodGet, "/sessions/"+id, "").Code)
	assert.Equal(t, http.StatusNoContent, serve(f.e, http.MethodDelete, "/sessions/"+id, "").Code)

	assertErrorCode(t, serve(f.e, http.MethodGet, "/sessions/"+id, ""), http.StatusNotFound, "SESSION_NOT_FOUND")
	assertErrorCode(t, serve(f.e, http.MethodDelete, "/sessions/"+id, ""), http.StatusNotFound, "SESSION_NOT_FOUND")
}

func TestSessionHandler_CreateSession_Limit(t *testing.T) {
	f := newLimitedSessionFixture(t, 1)
	id := f.createSession(t)

	assertErrorCode(t, serve(f.e, http.MethodPost, "/sessions", ""), http.StatusTooManyRequests, "SESSION_LIMIT_EXCEEDED")

	assert.Equal(t, http.StatusNoContent, serve(f.e, http.MethodDelete, "/sessions/"+id, "").Code)
	f.createSession(t)
}

func TestSessionHandler_UpdateDirectory(t *testing.T) {
	f := newSessionFixture(t)
	id := f.createSession(t)

	filtered := entity.Criteria{HasSubscription: entity.False, SearchTerm: "ann"}

	// Page 2 of the unfiltered listing
	f.directory.EXPECT().ListUsers(mock.Anything, usecase.DirectoryQuery{Page: 1, PageSize: 2}).Return(fullPage(1, 2), nil).Once()
	rec := serve(f.e, http.MethodPatch, "/sessions/"+id+"/directory", `{"page_size":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	f.directory.EXPECT().ListUsers(mock.Anything, usecase.DirectoryQuery{Page: 2, PageSize: 2}).Return(fullPage(2, 2), nil).Once()
	rec = serve(f.e, http.MethodPatch, "/sessions/"+id+"/directory", `{"move":"next"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A filter and search change goes back to page 1
	f.directory.EXPECT().ListUsers(mock.Anything, usecase.DirectoryQuery{Criteria: filtered, Page: 1, PageSize: 2}).
		Return(&usecase.DirectoryPage{Users: []*entity.User{{ID: 4}}, Page: 1, PageSize: 2}, nil).Once()
	rec = serve(f.e, http.MethodPatch, "/sessions/"+id+"/directory", `{"filter":{"type":"nosub"},"search":"ann"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var view console.SessionView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, 1, view.Directory.Page)
	assert.Equal(t, "ann", view.Directory.Criteria.SearchTerm)
	require.NotNil(t, view.Directory.Current)
	assert.False(t, view.Directory.Current.HasNext)
}

func TestSessionHandler_UpdateDirectory_Invalid(t *testing.T) {
	f := newSessionFixture(t)
	id := f.createSession(t)

	rec := serve(f.e, http.MethodPatch, "/sessions/"+id+"/directory", `{"page":0}`)
	assertErrorCode(t, rec, http.StatusBadRequest, domainerrors.CodeValidationFailed)

	rec = serve(f.e, http.MethodPatch, "/sessions/"+id+"/directory", `{"move":"sideways"}`)
	assertErrorCode(t, rec, http.StatusBadRequest, domainerrors.CodeValidationFailed)

	rec = serve(f.e, http.MethodPatch, "/sessions/"+id+"/directory", `{"filter":{"type":"vip"}}`)
	assertErrorCode(t, rec, http.StatusBadRequest, domainerrors.CodeInvalidArgument)
}

func TestSessionHandler_EditorPartialLinkThenRetry(t *testing.T) {
	f := newSessionFixture(t)
	id := f.createSession(t)

	user := &entity.User{ID: 7, Username: "ann"}
	empty := entity.EmptyChannelProfile()
	created := entity.ChannelProfile{ID: 31}.Normalized()
	linked := user.WithMessengerID(31)

	f.users.EXPECT().Get(mock.Anything, int64(7)).Return(user, nil)
	f.profiles.EXPECT().LoadProfile(mock.Anything, user).Return(&empty, nil)

	rec := serve(f.e, http.MethodPost, "/sessions/"+id+"/editor", `{"user_id":7}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	f.profiles.EXPECT().ParseChannelValue(`{"chat_id":5}`).Return(json.RawMessage(`{"chat_id":5}`), nil)
	f.profiles.EXPECT().SaveChannel(mock.Anything, mock.Anything).Return(
		&usecase.SaveChannelOutput{User: user, Profile: created},
		domainerrors.NewPartialLinkError(31, 7, errors.New("backend down")),
	).Once()

	rec = serve(f.e, http.MethodPut, "/sessions/"+id+"/editor/telegram", `{"value":"{\"chat_id\":5}"}`)
	assertErrorCode(t, rec, http.StatusConflict, domainerrors.CodePartialLinkFailure)

	// The retry only links; it never creates a second profile
	f.profiles.EXPECT().LinkProfile(mock.Anything, user, int64(31)).Return(&linked, nil).Once()

	rec = serve(f.e, http.MethodPost, "/sessions/"+id+"/editor/link", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var state console.EditorState
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &state))
	assert.Zero(t, state.PendingLink)
	require.NotNil(t, state.User)
	assert.Equal(t, int64(31), *state.User.MessengerID)
}

func TestSessionHandler_RetryLinkWithoutPending(t *testing.T) {
	f := newSessionFixture(t)
	id := f.createSession(t)

	rec := serve(f.e, http.MethodPost, "/sessions/"+id+"/editor/link", "")
	assertErrorCode(t, rec, http.StatusBadRequest, domainerrors.CodeInvalidArgument)
}
