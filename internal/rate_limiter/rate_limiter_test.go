package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.IsAllowed("10.0.0.1"), "attempt %d", i+1)
	}
	assert.False(t, rl.IsAllowed("10.0.0.1"))

	// Another client has its own window.
	assert.True(t, rl.IsAllowed("10.0.0.2"))
}

func TestWindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.IsAllowed("client"))
	assert.True(t, rl.IsAllowed("client"))
	assert.False(t, rl.IsAllowed("client"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.IsAllowed("client"))
}

func TestGetRemainingRequests(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	assert.Equal(t, 5, rl.GetRemainingRequests("client"))
	rl.IsAllowed("client")
	rl.IsAllowed("client")
	assert.Equal(t, 3, rl.GetRemainingRequests("client"))
}
