package validate

import (
	"errors"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func UpdateCartItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		id, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		ok, resp := parseAndValidate[model.UpdateCartItemInput](c, "cartItemInput")
		if !ok {
			return resp
		}

		c.Locals("cartItemId", uint(id))
		return c.Next()
	}
}

func Payment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.PaymentInput](c, "paymentInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}
