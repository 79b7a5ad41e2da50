package domain

import "errors"

// Error classes. Package-level sentinels wrap one of these so callers can
// ask both "which failure" and "which class of failure" with errors.Is.
var (
	// ErrValidation: malformed input (unparseable slot label, incomplete answer set, ...)
	ErrValidation = errors.New("validation error")

	// ErrStorage: the persistence collaborator failed a read or write
	ErrStorage = errors.New("storage error")

	// ErrPrecondition: an operation's precondition did not hold at call time
	// (slot not bookable, lead time, change notice period, ...)
	ErrPrecondition = errors.New("precondition violation")

	// ErrSlotConflict: the write lost a race for a slot; pick another slot rather than retrying
	ErrSlotConflict = errors.New("slot conflict")
)
