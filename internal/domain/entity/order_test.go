package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber_Format(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC)

	number := NewOrderNumber(at)
	assert.Equal(t, "ORD-20260829-101500", number)
	assert.Regexp(t, `^ORD-\d{8}-\d{6}$`, number)
}

func TestNewOrderNumber_SortsWithTime(t *testing.T) {
	earlier := time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC)
	later := earlier.Add(time.Second)
	nextDay := earlier.Add(24 * time.Hour)

	assert.Less(t, NewOrderNumber(earlier), NewOrderNumber(later))
	assert.Less(t, NewOrderNumber(later), NewOrderNumber(nextDay))
}

func TestNewOrderNumber_SameSecondCollides(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC)

	// Second resolution: two orders in the same second share a number and
	// must be rejected by the unique constraint downstream.
	assert.Equal(t, NewOrderNumber(at), NewOrderNumber(at.Add(500*time.Millisecond)))
}
