package model

import "notifyconsole/internal/domain/entity"

// PackageModel mirrors the backend's subscription package.
type PackageModel struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Type                string    `json:"type"`
	Time                string    `json:"time"`
	Offer               *string   `json:"offer"`
	Prize               *string   `json:"prize"`
	Amount              *int      `json:"amount"`
	Link                *string   `json:"link"`
	StartDate           Timestamp `json:"start_date"`
	EndDate             Timestamp `json:"end_date"`
	CurrentSubsQuantity int       `json:"current_subs_quantity"`
	CreatedAt           Timestamp `json:"created_at"`
}

func (m *PackageModel) ToEntity() *entity.Package {
	return &entity.Package{
		ID:                  m.ID,
		Name:                m.Name,
		Type:                entity.PackageType(m.Type),
		Time:                entity.PackageLength(m.Time),
		Offer:               deref(m.Offer),
		Prize:               deref(m.Prize),
		Amount:              m.Amount,
		Link:                deref(m.Link),
		StartDate:           m.StartDate.Ptr(),
		EndDate:             m.EndDate.Ptr(),
		CurrentSubsQuantity: m.CurrentSubsQuantity,
		CreatedAt:           m.CreatedAt.Time,
	}
}

// PackageWriteModel is the create body.
type PackageWriteModel struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Time      string    `json:"time"`
	Offer     *string   `json:"offer"`
	Prize     *string   `json:"prize"`
	Amount    *int      `json:"amount"`
	Link      *string   `json:"link"`
	StartDate Timestamp `json:"start_date"`
	EndDate   Timestamp `json:"end_date"`
}

func NewPackageWriteModel(in entity.PackageInput) PackageWriteModel {
	return PackageWriteModel{
		Name:      in.Name,
		Type:      string(in.Type),
		Time:      string(in.Time),
		Offer:     ref(in.Offer),
		Prize:     ref(in.Prize),
		Amount:    in.Amount,
		Link:      ref(in.Link),
		StartDate: TimestampOf(in.StartDate),
		EndDate:   TimestampOf(in.EndDate),
	}
}

// AssignmentModel is the subscribe body.
type AssignmentModel struct {
	Username         string `json:"username"`
	SubscriptionName string `json:"subscription_name"`
}

// GrantModel mirrors the backend's user-subscribed record.
type GrantModel struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	SubscriptionID int64     `json:"subscription_id"`
	StartDate      Timestamp `json:"start_date"`
	EndDate        Timestamp `json:"end_date"`
}

func (m *GrantModel) ToEntity() *entity.SubscriptionGrant {
	return &entity.SubscriptionGrant{
		ID:             m.ID,
		UserID:         m.UserID,
		SubscriptionID: m.SubscriptionID,
		StartDate:      m.StartDate.Ptr(),
		EndDate:        m.EndDate.Ptr(),
	}
}

// UserSubscriptionModel mirrors one row of a user's subscription listing.
type UserSubscriptionModel struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Time         string    `json:"time"`
	Offer        *string   `json:"offer"`
	Prize        *string   `json:"prize"`
	Amount       *int      `json:"amount"`
	Link         *string   `json:"link"`
	StartDate    Timestamp `json:"start_date"`
	EndDate      Timestamp `json:"end_date"`
	SubscribedAt Timestamp `json:"subscribed_at"`
}

func (m *UserSubscriptionModel) ToEntity() *entity.UserSubscription {
	return &entity.UserSubscription{
		PackageID:    m.ID,
		Name:         m.Name,
		Type:         m.Type,
		Time:         m.Time,
		Offer:        deref(m.Offer),
		Prize:        deref(m.Prize),
		Amount:       m.Amount,
		Link:         deref(m.Link),
		StartDate:    m.StartDate.Ptr(),
		EndDate:      m.EndDate.Ptr(),
		SubscribedAt: m.SubscribedAt.Ptr(),
	}
}
