package handler

import (
	"errors"
	"log"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookRoom places a confirmed reservation for the authenticated client.
func BookRoom(c *fiber.Ctx) error {
	db := database.DB

	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}

	roomId, ok := c.Locals("roomId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("bookRoomInput").(model.BookRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	checkIn, _ := c.Locals("checkInDate").(time.Time)
	checkOut, _ := c.Locals("checkOutDate").(time.Time)

	reservation, err := helper.BookRoom(db, *client, roomId, checkIn, checkOut, input.HasChildren, input.SpecialRequests)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrRoomNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		case errors.Is(err, helper.ErrRoomUnavailable):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_NOT_AVAILABLE, err)
		case errors.Is(err, helper.ErrDatesOverlap):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.RESERVATION_CONFLICT, err)
		case errors.Is(err, helper.ErrPastCheckIn), errors.Is(err, helper.ErrNonPositiveStay):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	PublishRoomStatus(reservation.RoomId, reservation.Room.RoomNumber, constants.ROOM_RESERVED)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":     constants.BOOKING_SUCCESS,
		"reservation": reservation,
	})
}

// MyReservations is the client dashboard list, newest first.
func MyReservations(c *fiber.Ctx) error {
	db := database.DB

	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}

	var reservations []model.Reservation
	if err := db.
		Preload("Room").
		Preload("Room.Category").
		Where("client_id = ?", client.ID).
		Order("created_at DESC").
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

// GetReservations is the staff view over all reservations with optional
// status and date filters.
func GetReservations(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	type ReservationFilter struct {
		model.Pagination
		Status string `query:"status"`
		RoomId *uint  `query:"room_id"`
		From   string `query:"from"` // YYYY-MM-DD
		To     string `query:"to"`
	}
	var filter ReservationFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter parameters", err)
	}

	query := db.Model(&model.Reservation{}).
		Preload("Client").
		Preload("Room").
		Preload("Room.Category")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RoomId != nil {
		query = query.Where("room_id = ?", *filter.RoomId)
	}
	if filter.From != "" {
		if from, err := utils.ParseDateYMD(filter.From); err == nil {
			query = query.Where("check_in_date >= ?", from)
		}
	}
	if filter.To != "" {
		if to, err := utils.ParseDateYMD(filter.To); err == nil {
			query = query.Where("check_out_date <= ?", to)
		}
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var reservations []model.Reservation
	if err := utils.ApplyPagination(query.Order("created_at DESC"), filter.Limit, filter.Page).
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       reservations,
		"totalCount": totalCount,
		"limit":      filter.Limit,
		"page":       filter.Page,
	})
}

// UpdateReservationStatus is the staff lifecycle transition. Check-in flips
// the room to occupied. Cancellation and check-out leave the room alone,
// reception marks it available again after inspection.
func UpdateReservationStatus(c *fiber.Ctx) error {
	db := database.DB

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
	}

	reservationId, ok := c.Locals("reservationId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("statusInput").(model.UpdateReservationStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var reservation model.Reservation
	var roomStatus string

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Room").First(&reservation, reservationId).Error; err != nil {
			return err
		}

		if err := tx.Model(&reservation).Update("status", input.Status).Error; err != nil {
			return err
		}

		if input.Status == constants.RESERVATION_CHECKED_IN {
			roomStatus = constants.ROOM_OCCUPIED
			if err := tx.Model(&model.Room{}).
				Where("id = ?", reservation.RoomId).
				Update("status", roomStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if roomStatus != "" {
		PublishRoomStatus(reservation.RoomId, reservation.Room.RoomNumber, roomStatus)
	}

	log.Printf("RESERVATION STATUS CHANGE: reservationId=%d status=%s", reservationId, input.Status)

	reservation.Status = input.Status
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// CancelReservation lets a client cancel their own upcoming reservation.
// The room keeps its reserved status until reception releases it.
func CancelReservation(c *fiber.Ctx) error {
	db := database.DB

	client, ok := c.Locals("client").(*model.Client)
	if !ok || client == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CLIENT_NOT_SET_UP, errors.New("no client"))
	}
	reservationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var reservation model.Reservation
	if err := db.Where("id = ? AND client_id = ?", reservationId, client.ID).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if reservation.Status != constants.RESERVATION_PENDING && reservation.Status != constants.RESERVATION_CONFIRMED {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Only upcoming reservations can be cancelled", errors.New("status is "+reservation.Status))
	}

	if err := db.Model(&reservation).Update("status", constants.RESERVATION_CANCELLED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	reservation.Status = constants.RESERVATION_CANCELLED
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}
