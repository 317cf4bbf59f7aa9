package bind_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrlabs/zephyr/pkg/bind"
)

type checkoutInput struct {
	Username string  `form:"username" validate:"required"`
	Items    string  `form:"items"`
	Total    float64 `form:"total"`
}

func TestFormBindsURLEncoded(t *testing.T) {
	form := url.Values{}
	form.Set("username", "scott")
	form.Set("items", "1\n2\n3")
	form.Set("total", "129.97")

	req := httptest.NewRequest("POST", "/cart/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var in checkoutInput
	errs, err := bind.Form(req, &in)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "scott", in.Username)
	assert.Equal(t, "1\n2\n3", in.Items)
	assert.InDelta(t, 129.97, in.Total, 0.0001)
}

func TestFormValidationErrors(t *testing.T) {
	req := httptest.NewRequest("POST", "/cart/checkout", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var in checkoutInput
	errs, err := bind.Form(req, &in)
	require.NoError(t, err)
	assert.Contains(t, errs, "username")
}

func TestFormBadNumber(t *testing.T) {
	form := url.Values{}
	form.Set("username", "scott")
	form.Set("total", "not-a-number")

	req := httptest.NewRequest("POST", "/cart/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var in checkoutInput
	_, err := bind.Form(req, &in)
	assert.Error(t, err)
}

func TestFormFallsBackToQuery(t *testing.T) {
	type searchInput struct {
		Search   string `form:"search"`
		Category string `form:"category"`
	}

	req := httptest.NewRequest("GET", "/items/search?search=fleece&category=outerwear", nil)

	var in searchInput
	errs, err := bind.Form(req, &in)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "fleece", in.Search)
	assert.Equal(t, "outerwear", in.Category)
}
