package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimFanOut(t *testing.T) {
	statusMu.Lock()
	fanOutRunning = false
	statusMu.Unlock()

	assert.True(t, claimFanOut())

	// A second connection arriving while the loop still runs must not start
	// another subscriber, even when the connection set emptied in between.
	assert.False(t, claimFanOut())
	assert.False(t, claimFanOut())

	// Only an explicit release by the exiting loop frees the claim.
	statusMu.Lock()
	fanOutRunning = false
	statusMu.Unlock()
	assert.True(t, claimFanOut())

	statusMu.Lock()
	fanOutRunning = false
	statusMu.Unlock()
}
