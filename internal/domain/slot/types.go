package slot

import "strings"

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusBlocked   Status = "blocked"
)

func NewStatus(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusAvailable, StatusBooked, StatusCancelled, StatusBlocked:
		return Status(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Blocking reports whether a slot in this status still claims its time range
// for overlap purposes. Cancelled slots release their interval.
func (s Status) Blocking() bool {
	return s != StatusCancelled
}
