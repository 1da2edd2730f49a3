package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	t.Run("nil date of birth", func(t *testing.T) {
		assert.Nil(t, AgeAt(nil, now))
	})

	t.Run("birthday already passed this year", func(t *testing.T) {
		dob := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
		age := AgeAt(&dob, now)
		require.NotNil(t, age)
		assert.Equal(t, 36, *age)
	})

	t.Run("birthday later this year", func(t *testing.T) {
		dob := time.Date(1990, time.December, 1, 0, 0, 0, 0, time.UTC)
		age := AgeAt(&dob, now)
		require.NotNil(t, age)
		assert.Equal(t, 35, *age)
	})

	t.Run("birthday today", func(t *testing.T) {
		dob := time.Date(2000, time.August, 30, 0, 0, 0, 0, time.UTC)
		age := AgeAt(&dob, now)
		require.NotNil(t, age)
		assert.Equal(t, 26, *age)
	})
}
