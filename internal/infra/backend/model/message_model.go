package model

import "notifyconsole/internal/domain/entity"

// MessageModel mirrors the backend's message log entry.
type MessageModel struct {
	ID            int64     `json:"id"`
	Text          string    `json:"text"`
	Link          *string   `json:"link"`
	MessengerType string    `json:"messenger_type"`
	UserID        *int64    `json:"user_id"`
	Time          Timestamp `json:"time"`
}

func (m *MessageModel) ToEntity() *entity.MessageLog {
	return &entity.MessageLog{
		ID:            m.ID,
		Text:          m.Text,
		Link:          deref(m.Link),
		MessengerType: entity.Channel(m.MessengerType),
		UserID:        m.UserID,
		Time:          m.Time.Time,
	}
}

// ManualSendReply is the single-send acknowledgement.
type ManualSendReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BulkSendReply is the bulk-send acknowledgement.
type BulkSendReply struct {
	QueuedCount int `json:"queued_count"`
}

// ChannelSendReply is the channel-post acknowledgement.
type ChannelSendReply struct {
	Message string `json:"message"`
}
