package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchStatus(t *testing.T) {
	for _, valid := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		status, err := ParseSearchStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, SearchStatus(valid), status)
	}

	// Сравнение регистрозависимое
	for _, invalid := range []string{"all", "Current", "UNSUPPORTED_STATUS", "", "APPROVED"} {
		_, err := ParseSearchStatus(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestBookingIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	b := &Booking{Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour)}
	assert.True(t, b.IsExpired(now))

	// Интервал полуоткрытый: бронирование истекает строго после End
	b = &Booking{Start: now.Add(-time.Hour), End: now}
	assert.False(t, b.IsExpired(now))

	b = &Booking{Start: now, End: now.Add(time.Hour)}
	assert.False(t, b.IsExpired(now))
}

func TestBookingStatusPredicates(t *testing.T) {
	waiting := &Booking{Status: StatusWaiting}
	assert.True(t, waiting.IsWaiting())
	assert.False(t, waiting.IsTerminal())
	assert.False(t, waiting.IsCanceled())

	for _, status := range []BookingStatus{StatusApproved, StatusRejected, StatusCanceled} {
		b := &Booking{Status: status}
		assert.False(t, b.IsWaiting(), string(status))
		assert.True(t, b.IsTerminal(), string(status))
	}

	assert.True(t, (&Booking{Status: StatusCanceled}).IsCanceled())
}

func TestItemStatusFromBool(t *testing.T) {
	assert.Equal(t, ItemAvailable, ItemStatusFromBool(true))
	assert.Equal(t, ItemUnavailable, ItemStatusFromBool(false))
}
