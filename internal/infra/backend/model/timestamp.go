// Package model holds the backend's wire representations and their mapping
// to domain entities.
package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// The backend emits ISO-8601 timestamps with and without zone offsets.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp decodes the backend's timestamps. Naive values are taken as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}
	if raw == "" {
		t.Time = time.Time{}

		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()

			return nil
		}
	}

	return errors.Errorf("unrecognized timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// Ptr returns nil for a zero timestamp.
func (t Timestamp) Ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time

	return &v
}

// TimestampOf wraps an optional time.
func TimestampOf(v *time.Time) Timestamp {
	if v == nil {
		return Timestamp{}
	}

	return Timestamp{Time: *v}
}
