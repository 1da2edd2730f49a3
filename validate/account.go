package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.CreateAccountInput](c, "createAccountInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}

func AdminChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.AdminChangePassword](c, "adminChangePasswordInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}
