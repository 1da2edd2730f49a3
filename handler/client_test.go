package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordNeverRevealsRegistration(t *testing.T) {
	db := handlerDB(t, &model.Client{}, &model.PasswordResetToken{}, &model.Reservation{}, &model.Review{})

	registered := model.Client{FirstName: "Anna", LastName: "Petrova", Email: "anna@example.com", Phone: "555-0101"}
	require.NoError(t, db.Create(&registered).Error)

	app := fiber.New()
	app.Post("/forgot-password", func(c *fiber.Ctx) error {
		var input model.ForgotPasswordRequest
		if err := c.BodyParser(&input); err != nil {
			return err
		}
		c.Locals("forgotPasswordInput", input)
		return ForgotPassword(c)
	})

	send := func(t *testing.T, email string) (int, string) {
		t.Helper()
		req := httptest.NewRequest("POST", "/forgot-password", strings.NewReader(`{"email":"`+email+`"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	knownStatus, knownBody := send(t, "anna@example.com")
	unknownStatus, unknownBody := send(t, "nobody@example.com")

	// Registered and unregistered addresses get the exact same answer.
	assert.Equal(t, fiber.StatusOK, knownStatus)
	assert.Equal(t, fiber.StatusOK, unknownStatus)
	assert.Equal(t, knownBody, unknownBody)

	// Only the registered address got a token.
	var tokens int64
	db.Model(&model.PasswordResetToken{}).Count(&tokens)
	assert.Equal(t, int64(1), tokens)
}
