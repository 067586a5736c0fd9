//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campusbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(t *testing.T, start, end string) booking.TimeSlot {
	t.Helper()
	day := "2026-03-02T"
	s, err := time.Parse(time.RFC3339, day+start+":00Z")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, day+end+":00Z")
	require.NoError(t, err)
	slot, err := booking.NewTimeSlot(s, e)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(time.Hour), slot.End())
		assert.Equal(t, time.Hour, slot.Duration())
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base.Add(-time.Minute))
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.TimeSlot
		overlaps bool
	}{
		{
			name:     "identical intervals overlap",
			a:        slotAt(t, "09:00", "10:00"),
			b:        slotAt(t, "09:00", "10:00"),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        slotAt(t, "09:00", "10:00"),
			b:        slotAt(t, "09:30", "10:30"),
			overlaps: true,
		},
		{
			name:     "containment overlaps",
			a:        slotAt(t, "09:00", "12:00"),
			b:        slotAt(t, "10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "back-to-back does not overlap",
			a:        slotAt(t, "09:00", "10:00"),
			b:        slotAt(t, "10:00", "11:00"),
			overlaps: false,
		},
		{
			name:     "disjoint does not overlap",
			a:        slotAt(t, "09:00", "10:00"),
			b:        slotAt(t, "11:00", "12:00"),
			overlaps: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			// Overlap is symmetric
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
		})
	}
}

func TestTimeSlotContains(t *testing.T) {
	slot := slotAt(t, "09:00", "10:00")

	assert.True(t, slot.Contains(slot.Start()))
	assert.True(t, slot.Contains(slot.Start().Add(30*time.Minute)))
	// End instant is outside the half-open interval
	assert.False(t, slot.Contains(slot.End()))
	assert.False(t, slot.Contains(slot.Start().Add(-time.Second)))
}

func TestNewNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		note, err := booking.NewNote("  study group  ")
		require.NoError(t, err)
		assert.Equal(t, "study group", note.String())
		assert.False(t, note.IsEmpty())
	})

	t.Run("empty note allowed", func(t *testing.T) {
		note, err := booking.NewNote("")
		require.NoError(t, err)
		assert.True(t, note.IsEmpty())
	})

	t.Run("over limit rejected", func(t *testing.T) {
		long := make([]byte, booking.MaxNoteLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := booking.NewNote(string(long))
		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})
}
