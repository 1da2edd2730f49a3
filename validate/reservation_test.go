package validate

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingApp() *fiber.App {
	app := fiber.New()
	app.Post("/rooms/:roomId/book", BookRoom("roomId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, url, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestBookRoomValidation(t *testing.T) {
	app := bookingApp()

	in := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	out := time.Now().AddDate(0, 0, 9).Format("2006-01-02")

	t.Run("valid booking passes through", func(t *testing.T) {
		status := postJSON(t, app, "/rooms/1/book",
			`{"checkInDate":"`+in+`","checkOutDate":"`+out+`"}`)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("non-numeric room id rejected", func(t *testing.T) {
		status := postJSON(t, app, "/rooms/abc/book",
			`{"checkInDate":"`+in+`","checkOutDate":"`+out+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("missing dates rejected", func(t *testing.T) {
		status := postJSON(t, app, "/rooms/1/book", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		status := postJSON(t, app, "/rooms/1/book",
			`{"checkInDate":"07/03/2026","checkOutDate":"`+out+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("past check-in rejected", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
		status := postJSON(t, app, "/rooms/1/book",
			`{"checkInDate":"`+past+`","checkOutDate":"`+out+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("check-out before check-in rejected", func(t *testing.T) {
		status := postJSON(t, app, "/rooms/1/book",
			`{"checkInDate":"`+out+`","checkOutDate":"`+in+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestUpdateReservationStatusValidation(t *testing.T) {
	app := fiber.New()
	app.Patch("/reservations/:reservationId/status", UpdateReservationStatus("reservationId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(t *testing.T, url, body string) int {
		t.Helper()
		req := httptest.NewRequest("PATCH", url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send(t, "/reservations/1/status", `{"status":"checked_in"}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, "/reservations/1/status", `{"status":"teleported"}`))
	assert.Equal(t, fiber.StatusBadRequest, send(t, "/reservations/x/status", `{"status":"confirmed"}`))
}
