package model

import "time"

type Reservation struct {
	DTO
	ClientId        uint      `gorm:"not null" json:"clientId"`
	Client          Client    `gorm:"foreignKey:ClientId" json:"client"`
	RoomId          uint      `gorm:"not null" json:"roomId"`
	Room            Room      `gorm:"foreignKey:RoomId" json:"room"`
	CheckInDate     time.Time `gorm:"type:date;not null" json:"checkInDate"`
	CheckOutDate    time.Time `gorm:"type:date;not null" json:"checkOutDate"`
	Status          string    `gorm:"size:15;not null;default:pending" json:"status"`
	TotalPrice      float64   `gorm:"not null" json:"totalPrice"`
	SpecialRequests *string   `json:"specialRequests"`
	HasChildren     bool      `gorm:"default:false" json:"hasChildren"`
}

// Nights is the stay duration in whole days.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

type BookRoomInput struct {
	CheckInDate     string  `validate:"required" json:"checkInDate"`  // YYYY-MM-DD
	CheckOutDate    string  `validate:"required" json:"checkOutDate"` // YYYY-MM-DD
	HasChildren     bool    `json:"hasChildren"`
	SpecialRequests *string `json:"specialRequests"`
}

type UpdateReservationStatusInput struct {
	Status string `validate:"required,oneof=pending confirmed checked_in checked_out cancelled" json:"status"`
}
