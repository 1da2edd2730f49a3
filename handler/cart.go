package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// resolveCart finds or creates the cart for the current identity. A logged-in
// client owns one cart by id, anonymous visitors one by session key.
func resolveCart(c *fiber.Ctx, db *gorm.DB, createMissing bool) (*model.Cart, error) {
	clientId, _ := c.Locals("clientId").(uint)
	sessionKey, _ := c.Locals("sessionKey").(string)

	var cart model.Cart
	query := db.Preload("Items").Preload("Items.Service")
	var err error
	if clientId != 0 {
		err = query.Where("client_id = ?", clientId).First(&cart).Error
	} else if sessionKey != "" {
		err = query.Where("session_key = ?", sessionKey).First(&cart).Error
	} else {
		return nil, errors.New("no cart identity")
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !createMissing {
			return nil, gorm.ErrRecordNotFound
		}
		cart = model.Cart{}
		if clientId != 0 {
			cart.ClientId = &clientId
		} else {
			cart.SessionKey = &sessionKey
		}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func cartPayload(cart *model.Cart) fiber.Map {
	items := make([]fiber.Map, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, fiber.Map{
			"id":         item.ID,
			"serviceId":  item.ServiceId,
			"service":    item.Service,
			"quantity":   item.Quantity,
			"totalPrice": item.TotalPrice(),
		})
	}
	return fiber.Map{
		"id":         cart.ID,
		"items":      items,
		"itemsCount": cart.ItemsCount(),
		"totalPrice": cart.TotalPrice(),
	}
}

func GetCart(c *fiber.Ctx) error {
	db := database.DB

	cart, err := resolveCart(c, db, false)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"items":      []fiber.Map{},
			"itemsCount": 0,
			"totalPrice": 0.0,
		})
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cartPayload(cart))
}

// AddToCart puts one unit of a service in the cart, incrementing the quantity
// when the line already exists.
func AddToCart(c *fiber.Ctx) error {
	db := database.DB

	serviceId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var service model.Service
	if err := db.First(&service, serviceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !service.IsAvailable {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Service is not available", errors.New("service unavailable"))
	}

	cart, err := resolveCart(c, db, true)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var item model.CartItem
	err = db.Where("cart_id = ? AND service_id = ?", cart.ID, serviceId).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = model.CartItem{CartId: cart.ID, ServiceId: serviceId, Quantity: 1}
		if err := db.Create(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	} else if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	} else {
		if err := db.Model(&item).Update("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	cart, err = resolveCart(c, db, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartPayload(cart))
}

// UpdateCartItem sets the quantity of a cart line. Zero or negative removes
// the line.
func UpdateCartItem(c *fiber.Ctx) error {
	db := database.DB

	cartItemId, ok := c.Locals("cartItemId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("cartItemInput").(model.UpdateCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	cart, err := resolveCart(c, db, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_EMPTY, err)
	}

	var item model.CartItem
	if err := db.Where("id = ? AND cart_id = ?", cartItemId, cart.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cart item not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if *input.Quantity <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	} else {
		if err := db.Model(&item).Update("quantity", *input.Quantity).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	cart, err = resolveCart(c, db, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartPayload(cart))
}

func RemoveFromCart(c *fiber.Ctx) error {
	db := database.DB

	cartItemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	cart, err := resolveCart(c, db, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_EMPTY, err)
	}

	result := db.Where("id = ? AND cart_id = ?", cartItemId, cart.ID).Delete(&model.CartItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cart item not found", errors.New("no such item"))
	}

	cart, err = resolveCart(c, db, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartPayload(cart))
}
