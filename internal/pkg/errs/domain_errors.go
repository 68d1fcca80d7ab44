package errs

import "errors"

// Scheduling error taxonomy shared across usecase layers. Admission engines
// return these as values; rejection is a normal, frequent outcome.
var (
	// Attendance errors
	ErrDuplicateReservation = errors.New("duplicate reservation")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrPolicyViolation      = errors.New("policy violation")

	// Meeting room errors
	ErrInvalidInterval    = errors.New("invalid interval")
	ErrSchedulingConflict = errors.New("scheduling conflict")
	ErrRoomInactive       = errors.New("room is inactive")

	// Record errors
	ErrNotFound = errors.New("record not found")

	// ErrPersistenceFailure is the only kind a caller may legitimately retry
	// with a fresh read.
	ErrPersistenceFailure = errors.New("persistence failure")
)
