package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 200.0, Mean([]float64{100, 200, 300}))
	assert.Equal(t, 150.0, Mean([]float64{100, 200}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 200.0, Median([]float64{300, 100, 200}))
	assert.Equal(t, 150.0, Median([]float64{100, 200, 300, 50}))
	assert.Equal(t, 100.0, Median([]float64{100}))
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{300, 100, 200}
	Median(values)
	assert.Equal(t, []float64{300, 100, 200}, values)
}

func TestMode(t *testing.T) {
	assert.Equal(t, 0.0, Mode(nil))
	assert.Equal(t, 200.0, Mode([]float64{100, 200, 200, 300}))

	// On a tie the value that reaches the top count first wins.
	assert.Equal(t, 100.0, Mode([]float64{100, 200, 100, 200}))
	assert.Equal(t, 300.0, Mode([]float64{300}))
}
