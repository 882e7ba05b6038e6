package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("not clocked in")
	ErrAlreadyOnBreak     = errors.New("already on break")
	ErrNotOnBreak         = errors.New("not on break")
	ErrAlreadyUnavailable = errors.New("already marked unavailable")
	ErrNotUnavailable     = errors.New("not marked unavailable")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
