package attendance

import "context"

// AttendanceRepository defines data access for attendance records. Records
// are append-only history: rows are created on clock-in, mutated through the
// break/unavailable cycle, finalized on clock-out, never deleted.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	Update(ctx context.Context, att Attendance) error

	// GetActiveForUpdate retrieves the user's active entry and locks the row
	// for the duration of the surrounding transaction. Concurrent mutations
	// for the same user serialize on this lock. Returns pgx.ErrNoRows when
	// the user has no active entry.
	GetActiveForUpdate(ctx context.Context, userID string) (Attendance, error)

	// GetActive is the lock-free variant used by read paths.
	GetActive(ctx context.Context, userID string) (*Attendance, error)

	// ListByUser returns the user's entries, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListCompleteInRange returns complete records with date in [from, to]
	// across all users, for the timesheet aggregator.
	ListCompleteInRange(ctx context.Context, from, to string) ([]Attendance, error)

	// ListActiveEntries returns every currently active entry across users.
	ListActiveEntries(ctx context.Context) ([]Attendance, error)
}
