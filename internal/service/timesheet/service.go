package timesheet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/leave"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/user"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/timeutil"
)

// defaultReportDays is the trailing window used when no range is given.
const defaultReportDays = 30

type TimesheetServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	clock          clock.Clock
}

func NewTimesheetService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	clk clock.Clock,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		clock:          clk,
	}
}

// Report implements timesheet.TimesheetService. For each weekday in the range
// and each active employee it emits one row: an approved leave request wins
// over a submitted record, which wins over nothing (missing).
func (s *TimesheetServiceImpl) Report(ctx context.Context, filter timesheet.ReportFilter) ([]timesheet.DayView, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, to := s.resolveRange(filter)

	employees, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Name < employees[j].Name })

	records, err := s.attendanceRepo.ListCompleteInRange(ctx, timeutil.DateOf(from), timeutil.DateOf(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	submitted := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		submitted[rec.UserID+"|"+rec.Date] = rec
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, timeutil.DateOf(from), timeutil.DateOf(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}

	var report []timesheet.DayView
	for day := to; !day.Before(from); day = day.AddDate(0, 0, -1) {
		if timeutil.IsWeekend(day) {
			continue
		}
		date := timeutil.DateOf(day)
		for _, emp := range employees {
			report = append(report, s.dayView(emp, date, submitted, leaves))
		}
	}
	return report, nil
}

func (s *TimesheetServiceImpl) dayView(
	emp user.User,
	date string,
	submitted map[string]attendance.Attendance,
	leaves []leave.LeaveRequest,
) timesheet.DayView {
	view := timesheet.DayView{
		Date:         date,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Status:       timesheet.DayMissing,
	}

	if onLeave(leaves, emp.ID, date) {
		view.Status = timesheet.DayLeave
		return view
	}

	if rec, ok := submitted[emp.ID+"|"+date]; ok {
		view.Status = timesheet.DaySubmitted
		if rec.TotalMinutes != nil {
			hours := timeutil.FormatMinutes(*rec.TotalMinutes)
			view.HoursWorked = &hours
		}
	}
	return view
}

// Summary implements timesheet.TimesheetService. Clocked-in employees count
// by their current activity; the rest fall back to leave, submitted, or
// missing for today.
func (s *TimesheetServiceImpl) Summary(ctx context.Context) (timesheet.SummaryResponse, error) {
	today := timeutil.DateOf(s.clock.Now())

	employees, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return timesheet.SummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	activeEntries, err := s.attendanceRepo.ListActiveEntries(ctx)
	if err != nil {
		return timesheet.SummaryResponse{}, fmt.Errorf("failed to list active entries: %w", err)
	}
	activeByUser := make(map[string]attendance.Attendance, len(activeEntries))
	for _, entry := range activeEntries {
		activeByUser[entry.UserID] = entry
	}

	records, err := s.attendanceRepo.ListCompleteInRange(ctx, today, today)
	if err != nil {
		return timesheet.SummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	submittedUsers := make(map[string]bool, len(records))
	for _, rec := range records {
		submittedUsers[rec.UserID] = true
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, today, today)
	if err != nil {
		return timesheet.SummaryResponse{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	var summary timesheet.SummaryResponse
	for _, emp := range employees {
		if entry, ok := activeByUser[emp.ID]; ok {
			switch entry.Activity() {
			case attendance.ActivityOnBreak:
				summary.OnBreak++
			case attendance.ActivityUnavailable:
				summary.Unavailable++
			default:
				summary.Working++
			}
			continue
		}
		if onLeave(leaves, emp.ID, today) {
			summary.OnLeave++
			continue
		}
		if submittedUsers[emp.ID] {
			summary.Submitted++
			continue
		}
		summary.Missing++
	}
	return summary, nil
}

func (s *TimesheetServiceImpl) resolveRange(filter timesheet.ReportFilter) (from, to time.Time) {
	now := s.clock.Now()
	to = now
	if filter.EndDate != "" {
		to, _ = time.Parse("2006-01-02", filter.EndDate)
	}
	from = to.AddDate(0, 0, -(defaultReportDays - 1))
	if filter.StartDate != "" {
		from, _ = time.Parse("2006-01-02", filter.StartDate)
	}
	return from, to
}

func onLeave(leaves []leave.LeaveRequest, employeeID, date string) bool {
	for _, l := range leaves {
		if l.EmployeeID == employeeID && l.Covers(date) {
			return true
		}
	}
	return false
}
