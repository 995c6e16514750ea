package audience

import (
	"testing"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selections
		wantSub entity.Tristate
		wantPkg int64
	}{
		{name: "all", sel: Selections{Type: "all"}, wantSub: entity.Unset},
		{name: "nosub ignores package", sel: Selections{Type: "nosub", PackageID: "5"}, wantSub: entity.False},
		{name: "specific all_subs", sel: Selections{Type: "specific", PackageID: "all_subs"}, wantSub: entity.True},
		{name: "specific empty package", sel: Selections{Type: "specific"}, wantSub: entity.True},
		{name: "specific package", sel: Selections{Type: "specific", PackageID: "5"}, wantSub: entity.True, wantPkg: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Resolve(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, c.HasSubscription)

			id, ok := c.Subscription.ID()
			assert.Equal(t, tt.wantPkg != 0, ok)
			assert.Equal(t, tt.wantPkg, id)
			assert.False(t, c.Subscription.IsAny())
		})
	}
}

func TestResolve_PlatformSearchAndMessenger(t *testing.T) {
	c, err := Resolve(Selections{Type: "all", Platform: "wordly", Search: "  bob ", Messenger: "telegram"})
	require.NoError(t, err)

	assert.Equal(t, entity.PlatformWordly, c.Platform)
	assert.Equal(t, "bob", c.SearchTerm)
	assert.Equal(t, entity.ChannelTelegram, c.Messenger)

	c, err = Resolve(Selections{Type: "all", Platform: "all"})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformNone, c.Platform)
}

func TestResolve_InvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		sel  Selections
	}{
		{name: "unknown type", sel: Selections{Type: "vip"}},
		{name: "empty type", sel: Selections{}},
		{name: "non numeric package", sel: Selections{Type: "specific", PackageID: "gold"}},
		{name: "negative package", sel: Selections{Type: "specific", PackageID: "-3"}},
		{name: "unknown platform", sel: Selections{Type: "all", Platform: "chess"}},
		{name: "unknown messenger", sel: Selections{Type: "all", Messenger: "sms"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.sel)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
			assert.Equal(t, domainerrors.CodeInvalidArgument, domainerrors.Code(err))
		})
	}
}
