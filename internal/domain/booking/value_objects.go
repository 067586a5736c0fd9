package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrNoteTooLong     = errors.New("note is too long (max 200 characters)")
)

const MaxNoteLength = 200

// TimeSlot is a half-open interval [start, end): the end instant itself is
// not occupied, so a booking ending at T and another starting at T coexist.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidInterval
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether two half-open intervals share at least one instant.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// Contains reports whether t falls inside [start, end).
func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: trimmed}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
