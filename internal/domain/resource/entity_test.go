//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"campusbook/internal/domain/resource"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := resource.NewResource("Room A", resource.KindRoom, "projector available", 1, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, resource.KindRoom, r.Kind())
		assert.Equal(t, int32(1), r.Capacity())
		assert.True(t, r.IsActive())
	})

	t.Run("details variant matches kind", func(t *testing.T) {
		details := resource.BookDetails{ISBN: "978-0134190440", Author: "Donovan"}
		r, err := resource.NewResource("The Go Programming Language", resource.KindBook, "", 1, details)
		require.NoError(t, err)
		assert.Equal(t, details, r.Details())
	})

	t.Run("details variant mismatch rejected", func(t *testing.T) {
		_, err := resource.NewResource("Room B", resource.KindRoom, "", 1, resource.BookDetails{ISBN: "x"})
		require.ErrorIs(t, err, resource.ErrDetailsKindMismatch)
	})

	cases := []struct {
		name     string
		resName  string
		kind     resource.Kind
		desc     string
		capacity int32
		errIs    error
	}{
		{
			name:     "name too short",
			resName:  "AB",
			kind:     resource.KindRoom,
			capacity: 1,
			errIs:    resource.ErrNameTooShort,
		},
		{
			name:     "name too long",
			resName:  strings.Repeat("a", resource.MaxNameLength+1),
			kind:     resource.KindRoom,
			capacity: 1,
			errIs:    resource.ErrNameTooLong,
		},
		{
			name:     "invalid kind",
			resName:  "Room C",
			kind:     resource.Kind("vehicle"),
			capacity: 1,
			errIs:    resource.ErrInvalidKind,
		},
		{
			name:     "description too long",
			resName:  "Room C",
			kind:     resource.KindRoom,
			desc:     strings.Repeat("a", resource.MaxDescriptionLength+1),
			capacity: 1,
			errIs:    resource.ErrDescriptionTooLong,
		},
		{
			name:     "zero capacity",
			resName:  "Room C",
			kind:     resource.KindRoom,
			capacity: 0,
			errIs:    resource.ErrInvalidCapacity,
		},
		{
			name:     "negative capacity",
			resName:  "Room C",
			kind:     resource.KindRoom,
			capacity: -3,
			errIs:    resource.ErrInvalidCapacity,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := resource.NewResource(c.resName, c.kind, c.desc, c.capacity, nil)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestResourceMutators(t *testing.T) {
	newRoom := func(t *testing.T) *resource.Resource {
		t.Helper()
		r, err := resource.NewResource("Room A", resource.KindRoom, "", 3, nil)
		require.NoError(t, err)
		return r
	}

	t.Run("rename", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.Rename("  Room A1  "))
		assert.Equal(t, "Room A1", r.Name())

		require.ErrorIs(t, r.Rename("x"), resource.ErrNameTooShort)
	})

	t.Run("change capacity", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.ChangeCapacity(5))
		assert.Equal(t, int32(5), r.Capacity())

		require.ErrorIs(t, r.ChangeCapacity(0), resource.ErrInvalidCapacity)
	})

	t.Run("activate and deactivate", func(t *testing.T) {
		r := newRoom(t)
		r.Deactivate()
		assert.False(t, r.IsActive())
		r.Activate()
		assert.True(t, r.IsActive())
	})
}

func TestNewKind(t *testing.T) {
	for _, valid := range []string{"room", "equipment", "book", "faculty_hour"} {
		kind, err := resource.NewKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, kind.String())
	}

	_, err := resource.NewKind("vehicle")
	require.ErrorIs(t, err, resource.ErrInvalidKind)
}

func TestUnmarshalDetails(t *testing.T) {
	t.Run("room payload", func(t *testing.T) {
		details, err := resource.UnmarshalDetails(resource.KindRoom, []byte(`{"location":"Bldg 2","seats":40}`))
		require.NoError(t, err)

		expected := resource.RoomDetails{Location: "Bldg 2", Seats: 40}
		if diff := cmp.Diff(expected, details); diff != "" {
			t.Errorf("RoomDetails mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty payload yields nil", func(t *testing.T) {
		details, err := resource.UnmarshalDetails(resource.KindBook, nil)
		require.NoError(t, err)
		assert.Nil(t, details)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := resource.UnmarshalDetails(resource.Kind("vehicle"), []byte(`{}`))
		require.ErrorIs(t, err, resource.ErrInvalidKind)
	})
}
