package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReservationCode_Format(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		code := newReservationCode(now)
		assert.Regexp(t, `^RES2608-[A-Z0-9]{5}$`, code)
	}
}

func TestNewReservationCode_SingleDigitMonthPadded(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	code := newReservationCode(now)
	assert.Regexp(t, `^RES2501-`, code)
}

func TestNewReservationCode_Varies(t *testing.T) {
	now := time.Now().UTC()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[newReservationCode(now)] = true
	}
	// 36^5 suffixes; 20 draws colliding entirely would mean a broken generator.
	assert.Greater(t, len(seen), 1)
}
