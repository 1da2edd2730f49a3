package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromoCodeIsValidAt(t *testing.T) {
	code := PromoCode{
		Code:      "SUMMER26",
		ValidFrom: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	assert.True(t, code.IsValidAt(time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC)))
	assert.True(t, code.IsValidAt(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, code.IsValidAt(time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)))

	assert.False(t, code.IsValidAt(time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, code.IsValidAt(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))

	code.IsActive = false
	assert.False(t, code.IsValidAt(time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)))
}
