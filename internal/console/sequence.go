// Package console holds the per-operator state of the admin console: the
// user directory view and the channel profile editor. Every asynchronous
// result is tagged with a sequence token and dropped when a newer request
// or state change has superseded it.
package console

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrSuperseded is returned for a result that arrived after a newer request.
var ErrSuperseded = errors.New("result superseded by a newer request")

// Sequencer issues monotonically increasing tokens.
type Sequencer struct {
	last atomic.Uint64
}

// Next issues a new token, superseding every earlier one.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// IsCurrent reports whether token is the latest issued.
func (s *Sequencer) IsCurrent(token uint64) bool {
	return s.last.Load() == token
}
