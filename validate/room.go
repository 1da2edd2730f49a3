package validate

import (
	"errors"
	"fmt"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
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

		_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
		}

		var category model.RoomCategory
		if err := database.DB.First(&category, input.CategoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room category does not exist", fmt.Errorf("categoryId not found"), "categoryId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var duplicate int64
		if err := database.DB.Model(&model.Room{}).Where("room_number = ?", input.RoomNumber).Count(&duplicate).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if duplicate > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room number already exists", nil, "roomNumber")
		}

		c.Locals("inputCreateRoom", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		id, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditRoomInput
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

		_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
		}

		c.Locals("roomId", uint(id))
		c.Locals("editRoomInput", input)
		return c.Next()
	}
}
