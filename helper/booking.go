package helper

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"

	"gorm.io/gorm"
)

// Booking failures are distinct so handlers can map them to proper status
// codes instead of one generic message.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not available for booking")
	ErrPastCheckIn     = errors.New("check-in date cannot be in the past")
	ErrNonPositiveStay = errors.New("check-out date must be after check-in date")
	ErrDatesOverlap    = errors.New("room already reserved for the selected dates")
)

// ValidateStayDates applies the booking form rules against a reference date.
func ValidateStayDates(checkIn, checkOut, today time.Time) error {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	today = truncateToDay(today)

	if checkIn.Before(today) {
		return ErrPastCheckIn
	}
	if !checkOut.After(checkIn) {
		return ErrNonPositiveStay
	}
	return nil
}

// Nights is the whole-day stay duration.
func Nights(checkIn, checkOut time.Time) int {
	return int(truncateToDay(checkOut).Sub(truncateToDay(checkIn)).Hours() / 24)
}

// StayPrice is nights times the category base price. No taxes, fees or
// seasonal rates.
func StayPrice(basePrice float64, checkIn, checkOut time.Time) float64 {
	return basePrice * float64(Nights(checkIn, checkOut))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BookRoom creates a confirmed reservation and flips the room to reserved in
// one transaction. The room claim is a conditional update on the current
// status, so two concurrent bookings cannot both take the same room, and an
// overlap check guards the date range against existing active reservations.
func BookRoom(db *gorm.DB, client model.Client, roomId uint, checkIn, checkOut time.Time, hasChildren bool, specialRequests *string) (*model.Reservation, error) {
	if err := ValidateStayDates(checkIn, checkOut, time.Now()); err != nil {
		return nil, err
	}

	var reservation *model.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.Preload("Category").First(&room, roomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != constants.ROOM_AVAILABLE {
			return ErrRoomUnavailable
		}

		var overlapping int64
		if err := tx.Model(&model.Reservation{}).
			Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
				roomId,
				[]string{constants.RESERVATION_CONFIRMED, constants.RESERVATION_CHECKED_IN},
				checkOut, checkIn).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrDatesOverlap
		}

		// Conditional claim: only succeeds if the room is still available.
		claim := tx.Model(&model.Room{}).
			Where("id = ? AND status = ?", roomId, constants.ROOM_AVAILABLE).
			Update("status", constants.ROOM_RESERVED)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrRoomUnavailable
		}

		reservation = &model.Reservation{
			ClientId:        client.ID,
			RoomId:          room.ID,
			CheckInDate:     truncateToDay(checkIn),
			CheckOutDate:    truncateToDay(checkOut),
			Status:          constants.RESERVATION_CONFIRMED,
			TotalPrice:      StayPrice(room.Category.BasePrice, checkIn, checkOut),
			SpecialRequests: specialRequests,
			HasChildren:     hasChildren,
		}
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Room").Preload("Room.Category").First(reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}
