package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateYMD(t *testing.T) {
	d, err := ParseDateYMD("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDateYMD("01/03/2026")
	assert.Error(t, err)

	_, err = ParseDateYMD("2026-13-01")
	assert.Error(t, err)
}

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(50, 0))
	assert.Equal(t, 50.0, CalculateGrowth(150, 100))
	assert.Equal(t, -25.0, CalculateGrowth(75, 100))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	require.NotNil(t, StringPtr("x"))
	assert.Equal(t, "x", *StringPtr("x"))
}
