package identity_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrlabs/zephyr/pkg/identity"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := identity.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, identity.CheckPassword(hash, "hunter22"))
	assert.False(t, identity.CheckPassword(hash, "hunter23"))
}

func TestCookieRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	identity.SetCookie(rec, "scott")

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	assert.Equal(t, "scott", identity.FromRequest(req))
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	identity.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, identity.CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestFromRequestAnonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, identity.FromRequest(req))
}
