package twitter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      Identifier
		wantErr bool
	}{
		{"user id", ByUserID(783214), false},
		{"screen name", ByScreenName("jack"), false},
		{"screen name with at", ByScreenName("@Twitter_Dev"), false},
		{"zero value", Identifier{}, true},
		{"negative id", ByUserID(-5), true},
		{"empty screen name", ByScreenName("@"), true},
		{"too long", ByScreenName("abcdefghijklmnop"), true},
		{"bad characters", ByScreenName("no-dashes"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIdentifierAccessors(t *testing.T) {
	byID := ByUserID(12)
	assert.True(t, byID.IsUserID())
	assert.Equal(t, int64(12), byID.UserID())
	assert.Equal(t, "12", byID.String())

	byName := ByScreenName(" @jack ")
	assert.False(t, byName.IsUserID())
	assert.Equal(t, "jack", byName.ScreenName())
	assert.Equal(t, "@jack", byName.String())
}

func TestIdentifierSetQuery(t *testing.T) {
	params := url.Values{}
	ByUserID(42).setQuery(params)
	assert.Equal(t, "42", params.Get("user_id"))
	assert.Empty(t, params.Get("screen_name"))

	params = url.Values{}
	ByScreenName("jack").setQuery(params)
	assert.Equal(t, "jack", params.Get("screen_name"))
	assert.Empty(t, params.Get("user_id"))
}
