package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveTypes lists the accepted leave categories.
var LeaveTypes = []string{"annual", "sick", "casual", "unpaid"}

// LeaveRequest covers the inclusive date span [StartDate, EndDate]. Only
// pending requests may be cancelled or reviewed; approved and rejected are
// terminal.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  string // "YYYY-MM-DD", inclusive
	EndDate    string // "YYYY-MM-DD", inclusive
	Reason     string
	Days       int
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName *string
}

// Covers reports whether the request's span contains the given day.
// ISO dates compare correctly as strings.
func (l *LeaveRequest) Covers(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}

// IsPending reports whether the request can still be cancelled or reviewed.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}
