// Package entity contains the core business objects the console works with.
// They mirror the records held by the notification backend.
package entity

import "time"

// User is an end user of the quiz platforms who can receive notifications.
type User struct {
	ID                       int64     `json:"id"`
	Username                 string    `json:"username"`
	Email                    string    `json:"email"`
	FullName                 string    `json:"full_name,omitempty"`
	PhoneNumber              string    `json:"phone_number,omitempty"`
	MessengerID              *int64    `json:"messenger_id,omitempty"`    // Channel profile link; nil until a profile is saved.
	SubscriptionID           *int64    `json:"subscription_id,omitempty"` // Current package, nil when unsubscribed.
	ActiveSubscriptionsCount int       `json:"active_subscriptions_count"`
	Quizard                  bool      `json:"quizard"`
	Wordly                   bool      `json:"wordly"`
	ArcadeRush               bool      `json:"arcaderush"`
	CreatedAt                time.Time `json:"created_at,omitzero"`
	ModifiedAt               time.Time `json:"modified_at,omitzero"`
}

// HasProfile reports whether the user is linked to a channel profile.
func (u User) HasProfile() bool {
	return u.MessengerID != nil && *u.MessengerID > 0
}

// WithMessengerID returns a copy of the user linked to the given profile.
func (u User) WithMessengerID(profileID int64) User {
	id := profileID
	u.MessengerID = &id

	return u
}

// UserInput carries the writable user fields for create and update.
type UserInput struct {
	Username       string `json:"username" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email"`
	FullName       string `json:"full_name,omitempty" validate:"max=255"`
	PhoneNumber    string `json:"phone_number,omitempty" validate:"max=50"`
	MessengerID    *int64 `json:"messenger_id,omitempty"`
	SubscriptionID *int64 `json:"subscription_id,omitempty"`

	// Platform memberships
	Quizard    bool `json:"quizard"`
	Wordly     bool `json:"wordly"`
	ArcadeRush bool `json:"arcaderush"`
}

// InputFrom builds the update body that rewrites u unchanged.
func InputFrom(u User) UserInput {
	return UserInput{
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		PhoneNumber:    u.PhoneNumber,
		MessengerID:    u.MessengerID,
		SubscriptionID: u.SubscriptionID,
		Quizard:        u.Quizard,
		Wordly:         u.Wordly,
		ArcadeRush:     u.ArcadeRush,
	}
}
