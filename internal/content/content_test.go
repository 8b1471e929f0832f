package content

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFallsBack(t *testing.T) {
	c := Default("", "")
	assert.Equal(t, DefaultViewAllURL, c.ViewAllURL)
	assert.Equal(t, DefaultDisclaimer, c.Disclaimer)

	c = Default("https://example.com/all", "Check with your city.")
	assert.Equal(t, "https://example.com/all", c.ViewAllURL)
	assert.Equal(t, "Check with your city.", c.Disclaimer)
}

func TestFallbackFor(t *testing.T) {
	c := Default("", "")
	assert.Nil(t, c.FallbackFor(2))

	fb := c.FallbackFor(0)
	require.NotNil(t, fb)
	assert.Equal(t, c.NoMatchMessage, fb.Message)
	assert.Equal(t, c.ViewAllURL, fb.ViewAllURL)
}

func TestGetContent(t *testing.T) {
	app := fiber.New()
	NewHandler(Default("", "")).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/pergola/content", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var got Content
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Pergola Planner", got.Title)
}
