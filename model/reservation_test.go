package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationNights(t *testing.T) {
	r := Reservation{
		CheckInDate:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 2, r.Nights())
}
