package leave

import "context"

type LeaveService interface {
	// Submit files a new pending request for the employee.
	Submit(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)

	// Cancel removes a pending request. Only the owner may cancel, and only
	// while the request is pending.
	Cancel(ctx context.Context, employeeID string, requestID string) error

	// Review approves or rejects a pending request and records the reviewer.
	// Terminal states are immutable.
	Review(ctx context.Context, reviewerID string, req ReviewLeaveRequest) error

	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListAll(ctx context.Context) ([]LeaveResponse, error)
	Summary(ctx context.Context, employeeID string) (LeaveSummaryResponse, error)
}
