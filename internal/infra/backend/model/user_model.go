package model

import "notifyconsole/internal/domain/entity"

// UserModel mirrors the backend's user schema.
type UserModel struct {
	ID                       int64     `json:"id"`
	Username                 string    `json:"username"`
	Email                    string    `json:"email"`
	FullName                 *string   `json:"full_name"`
	PhoneNumber              *string   `json:"phone_number"`
	MessengerID              *int64    `json:"messenger_id"`
	SubscriptionID           *int64    `json:"subscription_id"`
	ActiveSubscriptionsCount int       `json:"active_subscriptions_count"`
	Quizard                  *bool     `json:"quizard"`
	Wordly                   *bool     `json:"wordly"`
	ArcadeRush               *bool     `json:"arcaderush"`
	CreatedAt                Timestamp `json:"created_at"`
	ModifiedAt               Timestamp `json:"modified_at"`
}

// ToEntity maps the wire user to the domain.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                       m.ID,
		Username:                 m.Username,
		Email:                    m.Email,
		FullName:                 deref(m.FullName),
		PhoneNumber:              deref(m.PhoneNumber),
		MessengerID:              m.MessengerID,
		SubscriptionID:           m.SubscriptionID,
		ActiveSubscriptionsCount: m.ActiveSubscriptionsCount,
		Quizard:                  flag(m.Quizard),
		Wordly:                   flag(m.Wordly),
		ArcadeRush:               flag(m.ArcadeRush),
		CreatedAt:                m.CreatedAt.Time,
		ModifiedAt:               m.ModifiedAt.Time,
	}
}

// UserWriteModel is the create/update body. The backend requires username
// and email on every write, so updates always send the full record.
type UserWriteModel struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       *string `json:"full_name"`
	PhoneNumber    *string `json:"phone_number"`
	MessengerID    *int64  `json:"messenger_id"`
	SubscriptionID *int64  `json:"subscription_id"`
	Quizard        bool    `json:"quizard"`
	Wordly         bool    `json:"wordly"`
	ArcadeRush     bool    `json:"arcaderush"`
}

func NewUserWriteModel(in entity.UserInput) UserWriteModel {
	return UserWriteModel{
		Username:       in.Username,
		Email:          in.Email,
		FullName:       ref(in.FullName),
		PhoneNumber:    ref(in.PhoneNumber),
		MessengerID:    in.MessengerID,
		SubscriptionID: in.SubscriptionID,
		Quizard:        in.Quizard,
		Wordly:         in.Wordly,
		ArcadeRush:     in.ArcadeRush,
	}
}

// Older rows carry null platform flags.
func flag(b *bool) bool {
	return b != nil && *b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
