//go:build unit

package commands_test

import (
	"context"
	"testing"

	"campusbook/internal/domain/resource"
	"campusbook/internal/usecase/commands"
	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memResourceQueries serves the read-after-write lookups straight from the
// store, same trick as memBookingQueries.
type memResourceQueries struct {
	store *memStore
}

func (q *memResourceQueries) GetResource(_ context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	res, ok := q.store.resources[id]
	if !ok {
		return nil, queries.ErrResourceNotFound
	}
	return &queries.ResourceView{
		ID:       res.ID(),
		Name:     res.Name(),
		Kind:     res.Kind().String(),
		Capacity: res.Capacity(),
		IsActive: res.IsActive(),
	}, nil
}

func (q *memResourceQueries) ListResources(_ context.Context, _ queries.ResourceFilter) ([]*queries.ResourceView, error) {
	result := make([]*queries.ResourceView, 0, len(q.store.resources))
	for id := range q.store.resources {
		view, _ := q.GetResource(context.Background(), id)
		result = append(result, view)
	}
	return result, nil
}

func newResourceFixture() (*memStore, commands.ResourceCommands) {
	store := newMemStore()
	cmds := commands.NewResourceCommands(&memUoW{store: store}, &memResourceQueries{store: store})
	return store, cmds
}

func int32Ptr(v int32) *int32 { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestResourceCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("capacity defaults to 1", func(t *testing.T) {
		_, cmds := newResourceFixture()

		view, err := cmds.Create(ctx, commands.CreateResourceParams{
			Name: "Room A", Kind: "room",
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), view.Capacity)
		assert.True(t, view.IsActive)
	})

	t.Run("explicit capacity kept", func(t *testing.T) {
		_, cmds := newResourceFixture()

		view, err := cmds.Create(ctx, commands.CreateResourceParams{
			Name: "Chemistry Lab", Kind: "room", Capacity: int32Ptr(4),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(4), view.Capacity)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, cmds := newResourceFixture()

		_, err := cmds.Create(ctx, commands.CreateResourceParams{
			Name: "Van", Kind: "vehicle",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, cmds := newResourceFixture()

		_, err := cmds.Create(ctx, commands.CreateResourceParams{
			Name: "Room A", Kind: "room", Capacity: int32Ptr(0),
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestResourceCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		store, cmds := newResourceFixture()
		id := store.addResource(t, "Room A", 2, true)

		view, err := cmds.Update(ctx, id, commands.UpdateResourceParams{
			Name:     strPtr("Room A1"),
			Capacity: int32Ptr(5),
			IsActive: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Room A1", view.Name)
		assert.Equal(t, int32(5), view.Capacity)
		assert.False(t, view.IsActive)
	})

	t.Run("validation failure leaves entity alone", func(t *testing.T) {
		store, cmds := newResourceFixture()
		id := store.addResource(t, "Room A", 2, true)

		_, err := cmds.Update(ctx, id, commands.UpdateResourceParams{Capacity: int32Ptr(-1)})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Equal(t, int32(2), store.resources[id].Capacity())
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, cmds := newResourceFixture()

		_, err := cmds.Update(ctx, uuid.New(), commands.UpdateResourceParams{Name: strPtr("Room B")})
		require.ErrorIs(t, err, commands.ErrResourceNotFound)
	})
}

func TestResourceCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to bookings", func(t *testing.T) {
		store, resourceCmds := newResourceFixture()
		bookingCmds := commands.NewBookingCommands(
			&memUoW{store: store},
			commands.NewConflictChecker(),
			&memBookingQueries{store: store},
		)

		roomA := store.addResource(t, "Room A", 2, true)
		other := store.addResource(t, "Room B", 1, true)

		_, err := bookingCmds.Create(ctx, commands.CreateBookingParams{
			ResourceID: roomA, UserID: uuid.New(), StartTime: at(9), EndTime: at(10),
		})
		require.NoError(t, err)
		_, err = bookingCmds.Create(ctx, commands.CreateBookingParams{
			ResourceID: roomA, UserID: uuid.New(), StartTime: at(9), EndTime: at(10),
		})
		require.NoError(t, err)
		keep, err := bookingCmds.Create(ctx, commands.CreateBookingParams{
			ResourceID: other, UserID: uuid.New(), StartTime: at(9), EndTime: at(10),
		})
		require.NoError(t, err)

		require.NoError(t, resourceCmds.Delete(ctx, roomA))

		assert.NotContains(t, store.resources, roomA)
		assert.Len(t, store.bookings, 1)
		assert.Contains(t, store.bookings, keep.ID)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, cmds := newResourceFixture()
		require.ErrorIs(t, cmds.Delete(ctx, uuid.New()), commands.ErrResourceNotFound)
	})
}

// Ensure the detail variants survive a create round trip.
func TestResourceDetailsRoundTrip(t *testing.T) {
	details := resource.FacultyHourDetails{FacultyName: "Prof. Okafor", Office: "Bldg 3, Rm 214"}
	r, err := resource.NewResource("Office Hours", resource.KindFacultyHour, "", 1, details)
	require.NoError(t, err)
	assert.Equal(t, details, r.Details())
}
