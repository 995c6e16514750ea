package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Tristate is an optional boolean filter.
type Tristate int8

const (
	Unset Tristate = iota
	True
	False
)

// TristateOf lifts a bool into a set Tristate.
func TristateOf(b bool) Tristate {
	if b {
		return True
	}

	return False
}

// Bool reports the value and whether it is set.
func (t Tristate) Bool() (value, ok bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

func (t Tristate) MarshalJSON() ([]byte, error) {
	if v, ok := t.Bool(); ok {
		return json.Marshal(v)
	}

	return []byte("null"), nil
}

func (t *Tristate) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*t = Unset
	} else {
		*t = TristateOf(*v)
	}

	return nil
}

// Platform is a quiz product a user plays on.
type Platform string

const (
	PlatformNone       Platform = ""
	PlatformQuizard    Platform = "quizard"
	PlatformWordly     Platform = "wordly"
	PlatformArcadeRush Platform = "arcaderush"
)

// ParsePlatform accepts a platform name; "" and "all" mean no platform filter.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case PlatformNone, "all":
		return PlatformNone, nil
	case PlatformQuizard, PlatformWordly, PlatformArcadeRush:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// PackageScope narrows subscribers to a package. The zero value is no scope.
type PackageScope struct {
	id  int64
	any bool
}

// AnyPackage matches subscribers of every package.
func AnyPackage() PackageScope {
	return PackageScope{any: true}
}

// PackageOf matches subscribers of one package.
func PackageOf(id int64) PackageScope {
	return PackageScope{id: id}
}

// ID returns the concrete package id, if any.
func (s PackageScope) ID() (int64, bool) {
	return s.id, s.id > 0
}

// IsAny reports whether the scope is the every-package sentinel.
func (s PackageScope) IsAny() bool {
	return s.any
}

// IsZero reports whether no scope is set.
func (s PackageScope) IsZero() bool {
	return !s.any && s.id <= 0
}

func (s PackageScope) MarshalJSON() ([]byte, error) {
	switch {
	case s.any:
		return []byte(`"any"`), nil
	case s.id > 0:
		return []byte(strconv.FormatInt(s.id, 10)), nil
	default:
		return []byte("null"), nil
	}
}

// Criteria describes which users an operation targets.
type Criteria struct {
	HasSubscription Tristate     `json:"has_subscription"`
	Subscription    PackageScope `json:"subscription_id"`
	Platform        Platform     `json:"platform,omitempty"`
	SearchTerm      string       `json:"search,omitempty"`
	HasMessages     bool         `json:"has_messages,omitempty"`
	Messenger       Channel      `json:"messenger_type,omitempty"`
}

// Normalize drops a package scope that cannot apply: any scope when the
// subscription filter is not True, and the "any" sentinel always.
func (c Criteria) Normalize() Criteria {
	if c.HasSubscription != True || c.Subscription.IsAny() {
		c.Subscription = PackageScope{}
	}

	return c
}
