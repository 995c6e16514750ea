package model

import (
	"encoding/json"
	"testing"
	"time"

	"notifyconsole/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_AcceptsBackendLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: `"2025-03-01T10:20:30Z"`, want: time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC)},
		{raw: `"2025-03-01T12:20:30+02:00"`, want: time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC)},
		{raw: `"2025-03-01T10:20:30.123456"`, want: time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{raw: `"2025-03-01T10:20:30"`, want: time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC)},
		{raw: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestUserModel_ToEntity(t *testing.T) {
	payload := `{"id":7,"username":"ann","email":"ann@x.io","full_name":null,"phone_number":"+1",
		"messenger_id":3,"subscription_id":null,"active_subscriptions_count":2,
		"created_at":"2025-01-02T03:04:05","messenger":{"id":3}}`

	var m UserModel
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	u := m.ToEntity()

	assert.Equal(t, int64(7), u.ID)
	assert.Empty(t, u.FullName)
	assert.Equal(t, "+1", u.PhoneNumber)
	require.NotNil(t, u.MessengerID)
	assert.Equal(t, int64(3), *u.MessengerID)
	assert.Nil(t, u.SubscriptionID)
	assert.Equal(t, 2, u.ActiveSubscriptionsCount)
}

func TestProfileModel_RoundTripKeepsChannelsVerbatim(t *testing.T) {
	payload := `{"id":4,"mail":{"address":"a@b.c"},"whatsapp":null,"telegram":{"chat_id":9007199254740993},"discord":[]}`

	var m ProfileModel
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	p := m.ToEntity()

	assert.Equal(t, int64(4), p.ID)
	assert.JSONEq(t, `{}`, string(p.WhatsApp))
	assert.Equal(t, `{"chat_id":9007199254740993}`, string(p.Telegram))
	assert.Equal(t, `[]`, string(p.Discord))

	body, err := json.Marshal(NewProfileWriteModel(*p))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mail":{"address":"a@b.c"},"whatsapp":{},"telegram":{"chat_id":9007199254740993},"discord":[]}`, string(body))
	assert.Contains(t, string(body), "9007199254740993")
}

func TestNewUserWriteModel_SendsNullsForEmptyOptionals(t *testing.T) {
	id := int64(5)
	body, err := json.Marshal(NewUserWriteModel(entity.UserInput{Username: "ann", Email: "ann@x.io", MessengerID: &id}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"username":"ann","email":"ann@x.io","full_name":null,"phone_number":null,"messenger_id":5,"subscription_id":null,"quizard":false,"wordly":false,"arcaderush":false}`, string(body))
}

func TestUserModel_PlatformFlags(t *testing.T) {
	payload := `{"id":1,"username":"ann","email":"a@b.com","quizard":true,"wordly":null,"arcaderush":true}`

	var m UserModel
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	u := m.ToEntity()

	assert.True(t, u.Quizard)
	assert.False(t, u.Wordly)
	assert.True(t, u.ArcadeRush)

	body, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"quizard":true`)
	assert.Contains(t, string(body), `"arcaderush":true`)

	// Updates resend the memberships unchanged
	body, err = json.Marshal(NewUserWriteModel(entity.InputFrom(*u)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"ann","email":"a@b.com","full_name":null,"phone_number":null,
		"messenger_id":null,"subscription_id":null,"quizard":true,"wordly":false,"arcaderush":true}`, string(body))
}
