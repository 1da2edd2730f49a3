package validate

import (
	"fmt"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func parseAndValidate[T any](c *fiber.Ctx, localKey string) (bool, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Could not parse request: %s", err.Error()),
		})
	}
	if err := validate.Struct(&input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Locals(localKey, input)
	return true, nil
}

func RegisterClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterClientInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Could not parse request: %s", err.Error()),
			})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if input.DateOfBirth != "" {
			if _, err := utils.ParseDateYMD(input.DateOfBirth); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Date of birth must be YYYY-MM-DD", err, "dateOfBirth")
			}
		}
		c.Locals("registerInput", input)
		return c.Next()
	}
}

func EditProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.EditProfileInput](c, "profileInput")
		if !ok {
			return resp
		}
		input := c.Locals("profileInput").(model.EditProfileInput)
		if input.DateOfBirth != nil {
			if _, err := utils.ParseDateYMD(*input.DateOfBirth); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Date of birth must be YYYY-MM-DD", err, "dateOfBirth")
			}
		}
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.ClientChangePassword](c, "changePasswordInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.ForgotPasswordRequest](c, "forgotPasswordInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, resp := parseAndValidate[model.ResetPasswordRequest](c, "resetPasswordInput")
		if !ok {
			return resp
		}
		return c.Next()
	}
}
