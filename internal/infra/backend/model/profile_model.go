package model

import (
	"encoding/json"

	"notifyconsole/internal/domain/entity"
)

// ProfileModel mirrors the backend's messenger profile. Channel values are
// kept as raw JSON so untouched channels round-trip unchanged.
type ProfileModel struct {
	ID       int64           `json:"id,omitempty"`
	Mail     json.RawMessage `json:"mail"`
	WhatsApp json.RawMessage `json:"whatsapp"`
	Telegram json.RawMessage `json:"telegram"`
	Discord  json.RawMessage `json:"discord"`
}

func (m *ProfileModel) ToEntity() *entity.ChannelProfile {
	p := entity.ChannelProfile{
		ID:       m.ID,
		Mail:     m.Mail,
		WhatsApp: m.WhatsApp,
		Telegram: m.Telegram,
		Discord:  m.Discord,
	}.Normalized()

	return &p
}

// NewProfileWriteModel builds the create/update body; the id travels in the path.
func NewProfileWriteModel(p entity.ChannelProfile) ProfileModel {
	n := p.Normalized()

	return ProfileModel{
		Mail:     n.Mail,
		WhatsApp: n.WhatsApp,
		Telegram: n.Telegram,
		Discord:  n.Discord,
	}
}
