package console

import (
	"log/slog"
	"sync"
	"time"

	"notifyconsole/config"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 30 * time.Minute

// Store keeps console sessions in memory. Sessions idle for longer than the
// TTL are dropped on the next store access; there is no background sweeper.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl       time.Duration
	max       int // zero or less: unlimited
	now       func() time.Time
	directory usecase.DirectoryUsecase
	profiles  usecase.ProfileUsecase
	logger    *slog.Logger
}

// StoreParams holds dependencies for the session store, injected by Fx.
type StoreParams struct {
	fx.In

	Config    *config.Config
	Directory usecase.DirectoryUsecase
	Profiles  usecase.ProfileUsecase
	Logger    *slog.Logger
}

func NewStore(params StoreParams) *Store {
	ttl := defaultSessionTTL
	if params.Config != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	maxSessions := 0
	if params.Config != nil {
		maxSessions = params.Config.Session.MaxSessions
	}

	return &Store{
		sessions:  make(map[string]*Session),
		ttl:       ttl,
		max:       maxSessions,
		now:       time.Now,
		directory: params.Directory,
		profiles:  params.Profiles,
		logger:    params.Logger,
	}
}

// Create opens a session. Expired sessions are swept first, so only live
// ones count against the limit.
func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	if s.max > 0 && len(s.sessions) >= s.max {
		s.logger.Warn("Console session limit reached", slog.Int("max_sessions", s.max))

		return nil, errors.Wrap(domainerrors.ErrSessionLimitExceeded, "session limit exceeded")
	}

	session := newSession(uuid.NewString(), now, s.directory, s.profiles)
	s.sessions[session.ID] = session

	s.logger.Debug("Console session created", slog.String("session_id", session.ID))

	return session, nil
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	session, ok := s.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	session.lastSeen = now

	return session, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(s.sessions, id)

	return nil
}

// Len counts live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(s.now())

	return len(s.sessions)
}

func (s *Store) sweepLocked(now time.Time) {
	for id, session := range s.sessions {
		if now.Sub(session.lastSeen) > s.ttl {
			delete(s.sessions, id)
			s.logger.Debug("Console session expired", slog.String("session_id", id))
		}
	}
}

// Module provides the console session store
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
