package handler

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func handlerDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	database.DB = db
	return db
}

func checkoutApp(sessionKey, email string) *fiber.App {
	app := fiber.New()
	app.Post("/payment", func(c *fiber.Ctx) error {
		c.Locals("paymentInput", model.PaymentInput{Email: email})
		c.Locals("clientId", uint(0))
		c.Locals("sessionKey", sessionKey)
		return Checkout(c)
	})
	return app
}

func floatRef(v float64) *float64 { return &v }

func TestCheckoutSnapshotsCart(t *testing.T) {
	db := handlerDB(t,
		&model.Service{}, &model.Cart{}, &model.CartItem{},
		&model.Order{}, &model.OrderItem{},
	)

	spa := model.Service{Name: "Spa access", Price: floatRef(45.00), IsAvailable: true}
	dinner := model.Service{Name: "Dinner for two", Price: floatRef(80.00), IsAvailable: true}
	require.NoError(t, db.Create(&spa).Error)
	require.NoError(t, db.Create(&dinner).Error)

	sessionKey := "checkout-session"
	cart := model.Cart{SessionKey: &sessionKey}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&model.CartItem{CartId: cart.ID, ServiceId: spa.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&model.CartItem{CartId: cart.ID, ServiceId: dinner.ID, Quantity: 1}).Error)

	app := checkoutApp(sessionKey, "guest@example.com")
	req := httptest.NewRequest("POST", "/payment", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var order model.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, constants.ORDER_PAID, order.Status)
	assert.Equal(t, "guest@example.com", order.Email)
	assert.Equal(t, 170.00, order.TotalAmount)
	require.Len(t, order.Items, 2)

	prices := map[uint]float64{spa.ID: 45.00, dinner.ID: 80.00}
	quantities := map[uint]int{spa.ID: 2, dinner.ID: 1}
	for _, item := range order.Items {
		assert.Equal(t, prices[item.ServiceId], item.Price)
		assert.Equal(t, quantities[item.ServiceId], item.Quantity)
	}

	// The cart row survives with its lines cleared.
	var survivingCart model.Cart
	require.NoError(t, db.Preload("Items").First(&survivingCart, cart.ID).Error)
	assert.Empty(t, survivingCart.Items)

	// A later price change never touches the snapshot.
	require.NoError(t, db.Model(&spa).Update("price", 999.00).Error)
	var snapshot model.OrderItem
	require.NoError(t, db.Where("order_id = ? AND service_id = ?", order.ID, spa.ID).First(&snapshot).Error)
	assert.Equal(t, 45.00, snapshot.Price)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	db := handlerDB(t,
		&model.Service{}, &model.Cart{}, &model.CartItem{},
		&model.Order{}, &model.OrderItem{},
	)

	sessionKey := "empty-session"
	cart := model.Cart{SessionKey: &sessionKey}
	require.NoError(t, db.Create(&cart).Error)

	app := checkoutApp(sessionKey, "guest@example.com")
	req := httptest.NewRequest("POST", "/payment", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var orders int64
	db.Model(&model.Order{}).Count(&orders)
	assert.Equal(t, int64(0), orders)
}

func TestCheckoutGuestWithoutEmailRejected(t *testing.T) {
	db := handlerDB(t,
		&model.Service{}, &model.Cart{}, &model.CartItem{},
		&model.Order{}, &model.OrderItem{},
	)

	spa := model.Service{Name: "Spa access", Price: floatRef(45.00), IsAvailable: true}
	require.NoError(t, db.Create(&spa).Error)

	sessionKey := "no-email-session"
	cart := model.Cart{SessionKey: &sessionKey}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&model.CartItem{CartId: cart.ID, ServiceId: spa.ID, Quantity: 1}).Error)

	app := checkoutApp(sessionKey, "")
	req := httptest.NewRequest("POST", "/payment", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
