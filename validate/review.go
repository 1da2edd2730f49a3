package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.CreateReviewInput](c, "reviewInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}
