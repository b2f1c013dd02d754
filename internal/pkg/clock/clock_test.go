package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/chore-quest/internal/pkg/clock"
)

func TestRealIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.New().Now().Location())
}

func TestFixed(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	c := clock.Fixed(at)
	assert.True(t, at.Equal(c.Now()))
	assert.True(t, c.Now().Equal(c.Now()))
}
