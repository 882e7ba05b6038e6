package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveNotPending       = errors.New("only pending leave requests can be cancelled")
	ErrLeaveAlreadyReviewed  = errors.New("leave request has already been reviewed")
	ErrNotRequestOwner       = errors.New("not authorized to act on this leave request")
	ErrInvalidReviewDecision = errors.New("review decision must be approved or rejected")
)
