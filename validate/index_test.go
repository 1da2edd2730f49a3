package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetById(t *testing.T) {
	app := fiber.New()
	var captured uint
	app.Get("/items/:itemId", GetById("itemId"), func(c *fiber.Ctx) error {
		captured = c.Locals("inputId").(uint)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/items/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(42), captured)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	app := fiber.New()
	app.Delete("/items", Delete(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(t *testing.T, body string) int {
		t.Helper()
		req := httptest.NewRequest("DELETE", "/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send(t, `{"ids":[1,2,3]}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, `{"ids":[]}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, `not json`))
}

func TestUpdateCartItemValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/cart/update/:cartItemId", UpdateCartItem("cartItemId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(t *testing.T, url, body string) int {
		t.Helper()
		req := httptest.NewRequest("POST", url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send(t, "/cart/update/1", `{"quantity":3}`))
	// Explicit zero is a removal request, not a validation failure.
	assert.Equal(t, fiber.StatusOK, send(t, "/cart/update/1", `{"quantity":0}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, "/cart/update/1", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, "/cart/update/x", `{"quantity":1}`))
}

func TestCreateReviewValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/reviews", CreateReview(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	send := func(t *testing.T, body string) int {
		t.Helper()
		req := httptest.NewRequest("POST", "/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusCreated, send(t, `{"rating":5,"text":"Great stay"}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, `{"rating":6,"text":"Too good"}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, `{"rating":3}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, `{"text":"No rating"}`))
}
