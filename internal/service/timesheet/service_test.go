package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/leave"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeUserRepo struct {
	active []user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (r *fakeUserRepo) GetByID(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (r *fakeUserRepo) GetByUsername(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error)         { return r.active, nil }
func (r *fakeUserRepo) ListActive(_ context.Context) ([]user.User, error)   { return r.active, nil }
func (r *fakeUserRepo) Update(_ context.Context, _ user.User) error         { return nil }
func (r *fakeUserRepo) UpdatePassword(_ context.Context, _, _ string) error { return nil }
func (r *fakeUserRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }
func (r *fakeUserRepo) LinkGoogleAccount(_ context.Context, _, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

type fakeAttendanceRepo struct {
	complete []attendance.Attendance
	active   []attendance.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (r *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error { return nil }
func (r *fakeAttendanceRepo) GetActiveForUpdate(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}
func (r *fakeAttendanceRepo) GetActive(_ context.Context, _ string) (*attendance.Attendance, error) {
	return nil, nil
}
func (r *fakeAttendanceRepo) ListByUser(_ context.Context, _ string, _ int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListCompleteInRange(_ context.Context, from, to string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range r.complete {
		if att.Date >= from && att.Date <= to {
			result = append(result, att)
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListActiveEntries(_ context.Context) ([]attendance.Attendance, error) {
	return r.active, nil
}

type fakeLeaveRepo struct {
	approved []leave.LeaveRequest
}

func (r *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}
func (r *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}
func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, _ string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (r *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.LeaveRequest, error) { return nil, nil }
func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leave.Status, _ string) error {
	return nil
}
func (r *fakeLeaveRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, from, to string) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range r.approved {
		if req.StartDate <= to && req.EndDate >= from {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *fakeLeaveRepo) SumApprovedDaysSince(_ context.Context, _ string, _ string) (int, error) {
	return 0, nil
}

func minPtr(v int) *int { return &v }

func TestReportPrecedenceAndOrdering(t *testing.T) {
	users := &fakeUserRepo{active: []user.User{
		{ID: "emp-2", Name: "Bob"},
		{ID: "emp-1", Name: "Alice"},
	}}
	attendances := &fakeAttendanceRepo{complete: []attendance.Attendance{
		// Thu 2026-06-11, Alice worked 7.5 hours.
		{UserID: "emp-1", Date: "2026-06-11", TotalMinutes: minPtr(450), Status: attendance.StatusComplete},
		// Bob also has a record on the 11th but is on approved leave that day.
		{UserID: "emp-2", Date: "2026-06-11", TotalMinutes: minPtr(480), Status: attendance.StatusComplete},
	}}
	leaves := &fakeLeaveRepo{approved: []leave.LeaveRequest{
		{EmployeeID: "emp-2", StartDate: "2026-06-11", EndDate: "2026-06-12", Status: leave.StatusApproved},
	}}
	clk := &fakeClock{now: time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)}
	svc := NewTimesheetService(users, attendances, leaves, clk)

	// Thu 2026-06-11 through Fri 2026-06-12, two weekdays.
	report, err := svc.Report(context.Background(), timesheet.ReportFilter{
		StartDate: "2026-06-11",
		EndDate:   "2026-06-12",
	})
	require.NoError(t, err)
	require.Len(t, report, 4)

	// Date descending, then name ascending within each date.
	assert.Equal(t, "2026-06-12", report[0].Date)
	assert.Equal(t, "Alice", report[0].EmployeeName)
	assert.Equal(t, timesheet.DayMissing, report[0].Status)

	assert.Equal(t, "2026-06-12", report[1].Date)
	assert.Equal(t, "Bob", report[1].EmployeeName)
	assert.Equal(t, timesheet.DayLeave, report[1].Status)

	assert.Equal(t, "2026-06-11", report[2].Date)
	assert.Equal(t, "Alice", report[2].EmployeeName)
	assert.Equal(t, timesheet.DaySubmitted, report[2].Status)
	require.NotNil(t, report[2].HoursWorked)
	assert.Equal(t, "07:30", *report[2].HoursWorked)

	// Leave wins over the submitted record.
	assert.Equal(t, "2026-06-11", report[3].Date)
	assert.Equal(t, "Bob", report[3].EmployeeName)
	assert.Equal(t, timesheet.DayLeave, report[3].Status)
	assert.Nil(t, report[3].HoursWorked)
}

func TestReportSkipsWeekends(t *testing.T) {
	users := &fakeUserRepo{active: []user.User{{ID: "emp-1", Name: "Alice"}}}
	clk := &fakeClock{now: time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)}
	svc := NewTimesheetService(users, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, clk)

	// Fri 2026-06-12 through Mon 2026-06-15: Sat and Sun are excluded.
	report, err := svc.Report(context.Background(), timesheet.ReportFilter{
		StartDate: "2026-06-12",
		EndDate:   "2026-06-15",
	})
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, "2026-06-15", report[0].Date)
	assert.Equal(t, "2026-06-12", report[1].Date)
}

func TestReportDefaultsToTrailingThirtyDays(t *testing.T) {
	users := &fakeUserRepo{active: []user.User{{ID: "emp-1", Name: "Alice"}}}
	// Mon 2026-06-15; the trailing 30-day window is 2026-05-17..2026-06-15,
	// which contains 21 weekdays.
	clk := &fakeClock{now: time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)}
	svc := NewTimesheetService(users, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, clk)

	report, err := svc.Report(context.Background(), timesheet.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, report, 21)
	assert.Equal(t, "2026-06-15", report[0].Date)
	assert.Equal(t, "2026-05-18", report[len(report)-1].Date)
}

func TestReportRejectsMalformedDates(t *testing.T) {
	users := &fakeUserRepo{active: []user.User{{ID: "emp-1", Name: "Alice"}}}
	clk := &fakeClock{now: time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)}
	svc := NewTimesheetService(users, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, clk)

	_, err := svc.Report(context.Background(), timesheet.ReportFilter{StartDate: "15-06-2026"})
	assert.Error(t, err)
}

func TestSummaryCountsByState(t *testing.T) {
	onBreak := "12:00"
	users := &fakeUserRepo{active: []user.User{
		{ID: "emp-1", Name: "Alice"},
		{ID: "emp-2", Name: "Bob"},
		{ID: "emp-3", Name: "Carol"},
		{ID: "emp-4", Name: "Dave"},
		{ID: "emp-5", Name: "Erin"},
	}}
	attendances := &fakeAttendanceRepo{
		active: []attendance.Attendance{
			{UserID: "emp-1", Date: "2026-06-15", Status: attendance.StatusActive},
			{UserID: "emp-2", Date: "2026-06-15", Status: attendance.StatusActive, PauseStart: &onBreak},
		},
		complete: []attendance.Attendance{
			{UserID: "emp-4", Date: "2026-06-15", TotalMinutes: minPtr(480), Status: attendance.StatusComplete},
		},
	}
	leaves := &fakeLeaveRepo{approved: []leave.LeaveRequest{
		{EmployeeID: "emp-3", StartDate: "2026-06-15", EndDate: "2026-06-15", Status: leave.StatusApproved},
	}}
	clk := &fakeClock{now: time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)}
	svc := NewTimesheetService(users, attendances, leaves, clk)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Working)
	assert.Equal(t, 1, summary.OnBreak)
	assert.Equal(t, 0, summary.Unavailable)
	assert.Equal(t, 1, summary.OnLeave)
	assert.Equal(t, 1, summary.Submitted)
	assert.Equal(t, 1, summary.Missing)
}
