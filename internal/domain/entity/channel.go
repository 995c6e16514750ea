package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Channel is one of the messenger types a user can be reached on.
type Channel string

const (
	ChannelMail     Channel = "mail"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
	ChannelDiscord  Channel = "discord"
)

// Channels lists every channel in display order.
var Channels = []Channel{ChannelMail, ChannelWhatsApp, ChannelTelegram, ChannelDiscord}

// ParseChannel validates a messenger type name.
func ParseChannel(s string) (Channel, error) {
	switch c := Channel(s); c {
	case ChannelMail, ChannelWhatsApp, ChannelTelegram, ChannelDiscord:
		return c, nil
	default:
		return "", fmt.Errorf("unknown messenger type %q", s)
	}
}

func (c Channel) String() string {
	return string(c)
}

var emptyFields = json.RawMessage(`{}`)

// ChannelProfile holds a user's per-channel contact details. Each channel
// value is the JSON document stored by the backend, kept byte-for-byte so a
// write that touches one channel sends the others back unchanged.
type ChannelProfile struct {
	ID       int64           `json:"id,omitempty"` // Zero until the backend assigns one.
	Mail     json.RawMessage `json:"mail"`
	WhatsApp json.RawMessage `json:"whatsapp"`
	Telegram json.RawMessage `json:"telegram"`
	Discord  json.RawMessage `json:"discord"`
}

// EmptyChannelProfile returns a profile without identity whose channels are all {}.
func EmptyChannelProfile() ChannelProfile {
	return ChannelProfile{}.Normalized()
}

// HasIdentity reports whether the profile exists on the backend.
func (p ChannelProfile) HasIdentity() bool {
	return p.ID > 0
}

// Field returns the stored document for c.
func (p ChannelProfile) Field(c Channel) (json.RawMessage, error) {
	p = p.Normalized()

	switch c {
	case ChannelMail:
		return p.Mail, nil
	case ChannelWhatsApp:
		return p.WhatsApp, nil
	case ChannelTelegram:
		return p.Telegram, nil
	case ChannelDiscord:
		return p.Discord, nil
	default:
		return nil, fmt.Errorf("unknown channel %q", c)
	}
}

// With returns a copy of p where only channel c holds value.
func (p ChannelProfile) With(c Channel, value json.RawMessage) (ChannelProfile, error) {
	next := p.Normalized()
	v := cloneRaw(value)

	switch c {
	case ChannelMail:
		next.Mail = v
	case ChannelWhatsApp:
		next.WhatsApp = v
	case ChannelTelegram:
		next.Telegram = v
	case ChannelDiscord:
		next.Discord = v
	default:
		return ChannelProfile{}, fmt.Errorf("unknown channel %q", c)
	}

	return next, nil
}

// Normalized copies p, turning absent or null channel values into {}.
func (p ChannelProfile) Normalized() ChannelProfile {
	return ChannelProfile{
		ID:       p.ID,
		Mail:     orEmpty(p.Mail),
		WhatsApp: orEmpty(p.WhatsApp),
		Telegram: orEmpty(p.Telegram),
		Discord:  orEmpty(p.Discord),
	}
}

func orEmpty(v json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return cloneRaw(emptyFields)
	}

	return cloneRaw(v)
}

func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}

	out := make(json.RawMessage, len(v))
	copy(out, v)

	return out
}
