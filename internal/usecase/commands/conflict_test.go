//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusbook/internal/domain/booking"
	"campusbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	count     int64
	err       error
	gotStart  time.Time
	gotEnd    time.Time
	gotExcl   *uuid.UUID
	gotResVal uuid.UUID
}

func (s *stubCounter) CountActiveOverlapping(_ context.Context, resourceID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	s.gotResVal = resourceID
	s.gotStart = start
	s.gotEnd = end
	s.gotExcl = excludeID
	return s.count, s.err
}

func mustSlot(t *testing.T, startHour, endHour int) booking.TimeSlot {
	t.Helper()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return slot
}

func TestConflictChecker_HasConflict(t *testing.T) {
	checker := commands.NewConflictChecker()
	resourceID := uuid.New()
	slot := mustSlot(t, 9, 10)

	cases := []struct {
		name     string
		count    int64
		capacity int32
		conflict bool
	}{
		{name: "capacity 1 with no overlap", count: 0, capacity: 1, conflict: false},
		{name: "capacity 1 already taken", count: 1, capacity: 1, conflict: true},
		{name: "capacity 3 below limit", count: 2, capacity: 3, conflict: false},
		{name: "capacity 3 at limit", count: 3, capacity: 3, conflict: true},
		{name: "capacity 3 over limit", count: 4, capacity: 3, conflict: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			counter := &stubCounter{count: c.count}

			conflict, err := checker.HasConflict(context.Background(), counter, resourceID, slot, c.capacity, nil)
			require.NoError(t, err)
			assert.Equal(t, c.conflict, conflict)
		})
	}

	t.Run("passes interval and exclusion through", func(t *testing.T) {
		counter := &stubCounter{}
		exclude := uuid.New()

		_, err := checker.HasConflict(context.Background(), counter, resourceID, slot, 1, &exclude)
		require.NoError(t, err)

		assert.Equal(t, resourceID, counter.gotResVal)
		assert.Equal(t, slot.Start(), counter.gotStart)
		assert.Equal(t, slot.End(), counter.gotEnd)
		require.NotNil(t, counter.gotExcl)
		assert.Equal(t, exclude, *counter.gotExcl)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		counter := &stubCounter{err: storageErr}

		_, err := checker.HasConflict(context.Background(), counter, resourceID, slot, 1, nil)
		require.ErrorIs(t, err, storageErr)
	})
}
