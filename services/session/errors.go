package session

import (
	"errors"
	"fmt"
)

// ErrNoPriorResults means a booking choice arrived before any
// availability query stored a result set for the session.
var ErrNoPriorResults = errors.New("no prior availability results for session")

// IndexOutOfRangeError means the chosen number is outside the 1..Max
// index space of the stored result set.
type IndexOutOfRangeError struct {
	Index int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range: choose between 1 and %d", e.Index, e.Max)
}
