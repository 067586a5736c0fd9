package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind         = errors.New("invalid resource kind")
	ErrNameTooShort        = errors.New("resource name must be at least 3 characters")
	ErrNameTooLong         = errors.New("resource name is too long (max 255 characters)")
	ErrDescriptionTooLong  = errors.New("description is too long (max 500 characters)")
	ErrInvalidCapacity     = errors.New("capacity must be at least 1")
	ErrDetailsKindMismatch = errors.New("details do not match resource kind")
)

const (
	MinNameLength        = 3
	MaxNameLength        = 255
	MaxDescriptionLength = 500
	DefaultCapacity      = 1
)

// Resource is one bookable unit: a room, a piece of equipment, a library book
// or a faculty consultation hour. Capacity is the number of bookings the
// resource can host with overlapping intervals.
type Resource struct {
	id          uuid.UUID
	name        string
	kind        Kind
	description string
	capacity    int32
	isActive    bool
	details     Details
	createdAt   time.Time
	updatedAt   time.Time
}

func NewResource(name string, kind Kind, description string, capacity int32, details Details) (*Resource, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if details != nil && details.Kind() != kind {
		return nil, ErrDetailsKindMismatch
	}

	return &Resource{
		id:          uuid.New(),
		name:        name,
		kind:        kind,
		description: description,
		capacity:    capacity,
		isActive:    true,
		details:     details,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name string,
	kind Kind,
	description string,
	capacity int32,
	isActive bool,
	details Details,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:          id,
		name:        name,
		kind:        kind,
		description: description,
		capacity:    capacity,
		isActive:    isActive,
		details:     details,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Resource) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	r.name = name
	return nil
}

func (r *Resource) ChangeCapacity(capacity int32) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	r.capacity = capacity
	return nil
}

func (r *Resource) Describe(description string) error {
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	r.description = description
	return nil
}

func (r *Resource) Activate()   { r.isActive = true }
func (r *Resource) Deactivate() { r.isActive = false }

func validateName(name string) error {
	if len(name) < MinNameLength {
		return ErrNameTooShort
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID       { return r.id }
func (r *Resource) Name() string        { return r.name }
func (r *Resource) Kind() Kind          { return r.kind }
func (r *Resource) Description() string { return r.description }
func (r *Resource) Capacity() int32     { return r.capacity }
func (r *Resource) IsActive() bool      { return r.isActive }
func (r *Resource) Details() Details    { return r.details }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
