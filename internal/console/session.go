package console

import (
	"time"

	"notifyconsole/internal/usecase"
)

// Session is one operator's console: a directory view and a profile editor.
type Session struct {
	ID        string
	CreatedAt time.Time
	Directory *Paginator
	Editor    *ProfileEditor

	lastSeen time.Time // guarded by Store.mu
}

func newSession(id string, now time.Time, directory usecase.DirectoryUsecase, profiles usecase.ProfileUsecase) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		Directory: NewPaginator(directory, 0),
		Editor:    NewProfileEditor(profiles),
		lastSeen:  now,
	}
}

// SessionView is the serializable state of a session.
type SessionView struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Directory DirectoryState `json:"directory"`
	Editor    *EditorState   `json:"editor"`
}

func (s *Session) View() SessionView {
	return SessionView{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Directory: s.Directory.State(),
		Editor:    s.Editor.State(),
	}
}
