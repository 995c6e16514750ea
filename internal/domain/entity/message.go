package entity

import "time"

// MessageLog is one notification the backend has recorded as sent.
type MessageLog struct {
	ID            int64     `json:"id"`
	Text          string    `json:"text"`
	Link          string    `json:"link,omitempty"`
	MessengerType Channel   `json:"messenger_type"`
	UserID        *int64    `json:"user_id,omitempty"`
	Time          time.Time `json:"time"`
}

// UserDetail bundles everything the console shows for a single user.
type UserDetail struct {
	User          User               `json:"user"`
	Profile       ChannelProfile     `json:"profile"`
	Messages      []MessageLog       `json:"messages"`
	Subscriptions []UserSubscription `json:"subscriptions"`
}
