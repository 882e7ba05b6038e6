package attendance

import "context"

// AttendanceService is the per-user work-time state machine:
// NONE -> ACTIVE -> (ON_BREAK | UNAVAILABLE)* -> ACTIVE -> COMPLETE.
// Every operation returns a domain error on an illegal transition; nothing
// panics past this boundary.
type AttendanceService interface {
	ClockIn(ctx context.Context, userID string) (AttendanceResponse, error)
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)
	StartBreak(ctx context.Context, userID string) (AttendanceResponse, error)
	EndBreak(ctx context.Context, userID string) (AttendanceResponse, error)
	StartUnavailable(ctx context.Context, userID string) (AttendanceResponse, error)
	EndUnavailable(ctx context.Context, userID string) (AttendanceResponse, error)

	// Status reports the active entry, remaining hours against the standard
	// workday, and recent entries.
	Status(ctx context.Context, userID string) (StatusResponse, error)
}
