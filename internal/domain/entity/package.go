package entity

import (
	"fmt"
	"time"
)

// PackageType is the billing cadence of a subscription package.
type PackageType string

const (
	PackageDaily   PackageType = "daily"
	PackageWeekly  PackageType = "weekly"
	PackageMonthly PackageType = "monthly"
)

// PackageLength is the quiz time allowance granted by a package.
type PackageLength string

const (
	Length1Min  PackageLength = "1min"
	Length3Min  PackageLength = "3min"
	Length5Min  PackageLength = "5min"
	Length10Min PackageLength = "10min"
	Length30Min PackageLength = "30min"
)

// ParsePackageType validates a package type name.
func ParsePackageType(s string) (PackageType, error) {
	switch t := PackageType(s); t {
	case PackageDaily, PackageWeekly, PackageMonthly:
		return t, nil
	default:
		return "", fmt.Errorf("unknown package type %q", s)
	}
}

// ParsePackageLength validates a package time allowance.
func ParsePackageLength(s string) (PackageLength, error) {
	switch l := PackageLength(s); l {
	case Length1Min, Length3Min, Length5Min, Length10Min, Length30Min:
		return l, nil
	default:
		return "", fmt.Errorf("unknown package time %q", s)
	}
}

// Package is a subscription package users can be assigned to.
type Package struct {
	ID                  int64         `json:"id"`
	Name                string        `json:"name"`
	Type                PackageType   `json:"type"`
	Time                PackageLength `json:"time"`
	Offer               string        `json:"offer,omitempty"`
	Prize               string        `json:"prize,omitempty"`
	Amount              *int          `json:"amount,omitempty"`
	Link                string        `json:"link,omitempty"`
	StartDate           *time.Time    `json:"start_date,omitempty"`
	EndDate             *time.Time    `json:"end_date,omitempty"`
	CurrentSubsQuantity int           `json:"current_subs_quantity"`
	CreatedAt           time.Time     `json:"created_at,omitzero"`
}

// PackageInput carries the fields for creating a package.
type PackageInput struct {
	Name      string        `json:"name" validate:"required,max=255"`
	Type      PackageType   `json:"type" validate:"required,oneof=daily weekly monthly"`
	Time      PackageLength `json:"time" validate:"required,oneof=1min 3min 5min 10min 30min"`
	Offer     string        `json:"offer,omitempty"`
	Prize     string        `json:"prize,omitempty"`
	Amount    *int          `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Link      string        `json:"link,omitempty" validate:"omitempty,url"`
	StartDate *time.Time    `json:"start_date,omitempty"`
	EndDate   *time.Time    `json:"end_date,omitempty"`
}

// Assignment subscribes a user, identified by username, to a package by name.
type Assignment struct {
	Username    string `json:"username" validate:"required"`
	PackageName string `json:"subscription_name" validate:"required"`
}

// UserSubscription is one package a user is subscribed to, with the
// subscription's own validity window.
type UserSubscription struct {
	PackageID    int64      `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Time         string     `json:"time"`
	Offer        string     `json:"offer,omitempty"`
	Prize        string     `json:"prize,omitempty"`
	Amount       *int       `json:"amount,omitempty"`
	Link         string     `json:"link,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
}

// SubscriptionGrant is the backend's record of a completed assignment.
type SubscriptionGrant struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	SubscriptionID int64      `json:"subscription_id"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}
