// Package audience turns operator selections into targeting criteria and
// criteria into the ordered query parameters the backend expects.
package audience

import (
	"strconv"
	"strings"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
)

// Audience type tags as the operator UI sends them.
const (
	TypeAll      = "all"
	TypeNoSub    = "nosub"
	TypeSpecific = "specific"

	// AllPackages is the package selection meaning "subscribed to anything".
	AllPackages = "all_subs"
)

// Selections is raw, unvalidated operator input.
type Selections struct {
	Type      string `json:"type" query:"type"`
	PackageID string `json:"package_id" query:"package_id"`
	Platform  string `json:"platform" query:"platform"`
	Search    string `json:"search" query:"search"`
	Messenger string `json:"messenger_type" query:"messenger_type"`
}

// Resolve validates sel and maps it to Criteria.
func Resolve(sel Selections) (entity.Criteria, error) {
	var c entity.Criteria

	switch strings.TrimSpace(sel.Type) {
	case TypeAll:
		c.HasSubscription = entity.Unset
	case TypeNoSub:
		c.HasSubscription = entity.False
	case TypeSpecific:
		c.HasSubscription = entity.True
		scope, err := parsePackage(sel.PackageID)
		if err != nil {
			return entity.Criteria{}, err
		}
		c.Subscription = scope
	default:
		return entity.Criteria{}, domainerrors.ErrInvalidArgument.WithDetails("unknown audience type " + strconv.Quote(sel.Type))
	}

	platform, err := entity.ParsePlatform(strings.TrimSpace(sel.Platform))
	if err != nil {
		return entity.Criteria{}, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}
	c.Platform = platform

	if m := strings.TrimSpace(sel.Messenger); m != "" {
		channel, err := entity.ParseChannel(m)
		if err != nil {
			return entity.Criteria{}, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
		}
		c.Messenger = channel
	}

	c.SearchTerm = strings.TrimSpace(sel.Search)

	return c.Normalize(), nil
}

// parsePackage reads a package selection. Empty counts as AllPackages, which
// is what the package picker starts on.
func parsePackage(raw string) (entity.PackageScope, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == AllPackages {
		return entity.AnyPackage(), nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return entity.PackageScope{}, domainerrors.ErrInvalidArgument.WithDetails("invalid package id " + strconv.Quote(raw))
	}

	return entity.PackageOf(id), nil
}
