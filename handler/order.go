package handler

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Checkout turns the current cart into a paid order. Item names and prices
// are snapshotted onto the order so later catalog edits never change what
// the guest was charged. The cart lines are cleared, the cart row stays.
func Checkout(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("paymentInput").(model.PaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	cart, err := resolveCart(c, db, false)
	if err != nil || len(cart.Items) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CART_EMPTY, errors.New("nothing to pay for"))
	}

	email := input.Email
	client, _ := c.Locals("client").(*model.Client)
	if email == "" && client != nil {
		email = client.Email
	}
	if email == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email is required for guest checkout", errors.New("no email"), "email")
	}

	var order model.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		order = model.Order{
			PublicCode:  generateOrderCode(),
			Email:       email,
			Status:      constants.ORDER_PAID,
			TotalAmount: cart.TotalPrice(),
		}
		if client != nil {
			order.ClientId = &client.ID
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			var price float64
			if item.Service.Price != nil {
				price = *item.Service.Price
			}
			orderItem := model.OrderItem{
				OrderId:   order.ID,
				ServiceId: item.ServiceId,
				Quantity:  item.Quantity,
				Price:     price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Payment failed", err)
	}

	if err := db.Preload("Items").Preload("Items.Service").First(&order, order.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sendOrderEmail(&order)

	log.Printf("ORDER PAID: code=%s total=%.2f items=%d", order.PublicCode, order.TotalAmount, len(order.Items))

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": constants.ORDER_PAID_MESSAGE,
		"order":   order,
	})
}

func generateOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:12])
}

func sendOrderEmail(order *model.Order) {
	data := utils.OrderConfirmationData{
		OrderCode:   order.PublicCode,
		TotalAmount: order.TotalAmount,
		DetailLink:  fmt.Sprintf("%s/orders/%s", os.Getenv("APP_BASE_URL"), order.PublicCode),
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, utils.OrderConfirmationItem{
			Name:     item.Service.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	utils.SendOrderConfirmationEmail(order.Email, data)
}

// GetOrderByCode shows the order success page by its public code, no login
// required. The code is unguessable, that is the access control.
func GetOrderByCode(c *fiber.Ctx) error {
	db := database.DB

	code := c.Params("code")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order code is required", errors.New("empty code"))
	}

	var order model.Order
	if err := db.Preload("Items").Preload("Items.Service").
		Where("public_code = ?", code).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// MyOrders lists orders of the authenticated client, newest first.
func MyOrders(c *fiber.Ctx) error {
	db := database.DB

	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}

	var orders []model.Order
	if err := db.Preload("Items").Preload("Items.Service").
		Where("client_id = ?", client.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// OrderQRCode renders a PNG QR code pointing at the order success page.
func OrderQRCode(c *fiber.Ctx) error {
	db := database.DB

	code := c.Params("code")
	var order model.Order
	if err := db.Where("public_code = ?", code).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	link := fmt.Sprintf("%s/orders/%s", os.Getenv("APP_BASE_URL"), order.PublicCode)
	png, err := utils.GenerateQRCode(link, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate QR code", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
