package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	now := NewRealClock().Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
	assert.Equal(t, time.UTC, now.Location())
}

func TestMockClock_Now(t *testing.T) {
	stamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(stamp)

	assert.Equal(t, stamp, clock.Now())
	assert.Equal(t, stamp, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	tests := []struct {
		name string
		by   time.Duration
		want time.Time
	}{
		{"forward", 36 * time.Hour, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"backward", -2 * time.Hour, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewMockClockFromString("2024-01-01T12:00:00Z")
			clock.Advance(tt.by)
			assert.Equal(t, tt.want, clock.Now())
		})
	}
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2024-03-02T08:15:00Z")
	assert.Equal(t, time.Date(2024, 3, 2, 8, 15, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() {
		NewMockClockFromString("2024-03-02")
	})
}
