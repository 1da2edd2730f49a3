package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateStayDates(t *testing.T) {
	today := date(2026, time.March, 10)

	t.Run("valid range passes", func(t *testing.T) {
		err := ValidateStayDates(date(2026, time.March, 11), date(2026, time.March, 13), today)
		assert.NoError(t, err)
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		err := ValidateStayDates(today, date(2026, time.March, 12), today)
		assert.NoError(t, err)
	})

	t.Run("past check-in rejected", func(t *testing.T) {
		err := ValidateStayDates(date(2026, time.March, 9), date(2026, time.March, 12), today)
		assert.ErrorIs(t, err, ErrPastCheckIn)
	})

	t.Run("check-out equal to check-in rejected", func(t *testing.T) {
		err := ValidateStayDates(date(2026, time.March, 11), date(2026, time.March, 11), today)
		assert.ErrorIs(t, err, ErrNonPositiveStay)
	})

	t.Run("check-out before check-in rejected", func(t *testing.T) {
		err := ValidateStayDates(date(2026, time.March, 13), date(2026, time.March, 11), today)
		assert.ErrorIs(t, err, ErrNonPositiveStay)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		checkIn := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
		err := ValidateStayDates(checkIn, date(2026, time.March, 12), today)
		assert.NoError(t, err)
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(date(2026, time.March, 1), date(2026, time.March, 3)))
	assert.Equal(t, 1, Nights(date(2026, time.March, 1), date(2026, time.March, 2)))
	assert.Equal(t, 31, Nights(date(2026, time.January, 1), date(2026, time.February, 1)))
}

func TestStayPrice(t *testing.T) {
	// Two nights at the standard rate.
	total := StayPrice(100.00, date(2026, time.March, 1), date(2026, time.March, 3))
	assert.Equal(t, 200.00, total)

	total = StayPrice(150.50, date(2026, time.March, 1), date(2026, time.March, 2))
	assert.Equal(t, 150.50, total)
}
