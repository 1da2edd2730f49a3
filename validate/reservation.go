package validate

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// BookRoom parses and validates the booking form. Date-range rules are
// rejected here with field-level errors; availability is checked inside the
// booking transaction.
func BookRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		id, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.BookRoomInput
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

		checkIn, err := utils.ParseDateYMD(input.CheckInDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-in date must be YYYY-MM-DD", err, "checkInDate")
		}
		checkOut, err := utils.ParseDateYMD(input.CheckOutDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-out date must be YYYY-MM-DD", err, "checkOutDate")
		}

		if err := helper.ValidateStayDates(checkIn, checkOut, time.Now()); err != nil {
			key := "checkInDate"
			if errors.Is(err, helper.ErrNonPositiveStay) {
				key = "checkOutDate"
			}
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, key)
		}

		c.Locals("roomId", uint(id))
		c.Locals("bookRoomInput", input)
		c.Locals("checkInDate", checkIn)
		c.Locals("checkOutDate", checkOut)
		return c.Next()
	}
}

func UpdateReservationStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		id, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateReservationStatusInput
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

		c.Locals("reservationId", uint(id))
		c.Locals("statusInput", input)
		return c.Next()
	}
}
