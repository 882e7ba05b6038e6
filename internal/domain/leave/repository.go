package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string) error

	// Delete removes a pending request (cancellation). Reviewed requests are
	// immutable and never deleted.
	Delete(ctx context.Context, id string) error

	// ListApprovedOverlapping returns approved requests whose span overlaps
	// [from, to], for the timesheet aggregator.
	ListApprovedOverlapping(ctx context.Context, from, to string) ([]LeaveRequest, error)

	// SumApprovedDaysSince totals approved leave days for requests starting
	// on or after the given date.
	SumApprovedDaysSince(ctx context.Context, employeeID string, since string) (int, error)
}
