package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/leave"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/user"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	tx database.TxManager
	leave.LeaveRepository
	userRepo user.UserRepository
	clock    clock.Clock
}

func NewLeaveService(tx database.TxManager, leaveRepo leave.LeaveRepository, userRepo user.UserRepository, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:              tx,
		LeaveRepository: leaveRepo,
		userRepo:        userRepo,
		clock:           clk,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	days := 0
	if req.Days != nil {
		days = *req.Days
	} else {
		var err error
		days, err = businessDays(req.StartDate, req.EndDate)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Days:       days,
		Status:     leave.StatusPending,
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to submit leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, employeeID string, requestID string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRepository.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.EmployeeID != employeeID {
			return leave.ErrNotRequestOwner
		}
		if !request.IsPending() {
			return leave.ErrLeaveNotPending
		}
		return s.LeaveRepository.Delete(ctx, requestID)
	})
}

// Review implements leave.LeaveService.
func (s *LeaveServiceImpl) Review(ctx context.Context, reviewerID string, req leave.ReviewLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return leave.ErrLeaveAlreadyReviewed
		}
		return s.LeaveRepository.UpdateStatus(ctx, req.ID, leave.Status(req.Status), reviewerID)
	})
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Summary implements leave.LeaveService. Used leave counts approved days for
// requests starting in the current calendar year.
func (s *LeaveServiceImpl) Summary(ctx context.Context, employeeID string) (leave.LeaveSummaryResponse, error) {
	u, err := s.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveSummaryResponse{}, err
	}

	yearStart := fmt.Sprintf("%04d-01-01", s.clock.Now().Year())
	used, err := s.LeaveRepository.SumApprovedDaysSince(ctx, employeeID, yearStart)
	if err != nil {
		return leave.LeaveSummaryResponse{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	requests, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.LeaveSummaryResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.LeaveSummaryResponse{
		TotalQuota: u.LeaveQuota,
		UsedLeaves: used,
		Requests:   toResponses(requests),
	}, nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	result := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, leave.ToResponse(r))
	}
	return result
}

// businessDays counts weekdays in the inclusive span [start, end].
func businessDays(start, end string) (int, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !timeutil.IsWeekend(d) {
			days++
		}
	}
	return days, nil
}
