package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) set(t *testing.T, value string) {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	c.now = parsed
}

type fakeAttendanceRepo struct {
	entries map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{entries: make(map[string]*attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	stored := att
	r.entries[att.ID] = &stored
	return att, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := r.entries[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	stored := att
	r.entries[att.ID] = &stored
	return nil
}

func (r *fakeAttendanceRepo) GetActiveForUpdate(_ context.Context, userID string) (attendance.Attendance, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.Status == attendance.StatusActive {
			return *e, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (r *fakeAttendanceRepo) GetActive(_ context.Context, userID string) (*attendance.Attendance, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.Status == attendance.StatusActive {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByUser(_ context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, e := range r.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListCompleteInRange(_ context.Context, from, to string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, e := range r.entries {
		if e.Status == attendance.StatusComplete && e.Date >= from && e.Date <= to {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListActiveEntries(_ context.Context) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, e := range r.entries {
		if e.Status == attendance.StatusActive {
			result = append(result, *e)
		}
	}
	return result, nil
}

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo, *fakeClock) {
	repo := newFakeAttendanceRepo()
	clk := &fakeClock{}
	svc := NewAttendanceService(fakeTxManager{}, repo, clk)
	return svc, repo, clk
}

func TestClockInCreatesActiveEntry(t *testing.T) {
	svc, _, clk := newTestService()
	clk.set(t, "2026-03-02 08:00")

	resp, err := svc.ClockIn(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "08:00", resp.Login)
	assert.Nil(t, resp.Logout)
	assert.Equal(t, attendance.StatusActive, resp.Status)
	assert.Equal(t, attendance.ActivityWorking, resp.Activity)
	assert.Equal(t, "00:00", resp.Pause)
	assert.Equal(t, "00:00", resp.Unavailable)
}

func TestClockInTwiceFails(t *testing.T) {
	svc, _, clk := newTestService()
	clk.set(t, "2026-03-02 08:00")

	_, err := svc.ClockIn(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutWithoutClockInFails(t *testing.T) {
	svc, _, clk := newTestService()
	clk.set(t, "2026-03-02 17:00")

	_, err := svc.ClockOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestFullDayWithBreak(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 08:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 12:00")
	resp, err := svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActivityOnBreak, resp.Activity)

	clk.set(t, "2026-03-02 12:30")
	resp, err = svc.EndBreak(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActivityWorking, resp.Activity)
	assert.Equal(t, "00:30", resp.Pause)

	clk.set(t, "2026-03-02 17:00")
	resp, err = svc.ClockOut(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusComplete, resp.Status)
	require.NotNil(t, resp.Logout)
	assert.Equal(t, "17:00", *resp.Logout)
	require.NotNil(t, resp.TotalAvailable)
	assert.Equal(t, "08:30", *resp.TotalAvailable)
}

func TestClockOutClosesOpenBreak(t *testing.T) {
	svc, repo, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 09:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 13:00")
	_, err = svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 14:00")
	resp, err := svc.ClockOut(ctx, "user-1")
	require.NoError(t, err)

	// The open break is folded in at clock-out: 5h elapsed, 1h break.
	assert.Equal(t, "01:00", resp.Pause)
	require.NotNil(t, resp.TotalAvailable)
	assert.Equal(t, "04:00", *resp.TotalAvailable)

	for _, e := range repo.entries {
		assert.Nil(t, e.PauseStart)
		assert.Nil(t, e.UnavailableStart)
	}
}

func TestEndBreakTwiceFails(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 09:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 10:00")
	_, err = svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 10:15")
	_, err = svc.EndBreak(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx, "user-1")
	assert.ErrorIs(t, err, attendance.ErrNotOnBreak)
}

func TestEndUnavailableWhileWorkingFails(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 09:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.EndUnavailable(ctx, "user-1")
	assert.ErrorIs(t, err, attendance.ErrNotUnavailable)
}

func TestBreakAndUnavailableAreExclusive(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 09:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 10:00")
	_, err = svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)

	// Going unavailable mid-break closes the break first.
	clk.set(t, "2026-03-02 10:20")
	resp, err := svc.StartUnavailable(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActivityUnavailable, resp.Activity)
	assert.Equal(t, "00:20", resp.Pause)

	clk.set(t, "2026-03-02 10:50")
	resp, err = svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActivityOnBreak, resp.Activity)
	assert.Equal(t, "00:30", resp.Unavailable)
}

func TestStartBreakTwiceFails(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 09:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 10:00")
	_, err = svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx, "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyOnBreak)
}

func TestOvernightShiftRollsOver(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 22:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	// Clock-out after midnight: 22:00 to 06:00 is eight hours.
	clk.set(t, "2026-03-03 06:00")
	resp, err := svc.ClockOut(ctx, "user-1")
	require.NoError(t, err)

	require.NotNil(t, resp.TotalAvailable)
	assert.Equal(t, "08:00", *resp.TotalAvailable)
	assert.Equal(t, "2026-03-02", resp.Date)
}

func TestStatusRemainingHours(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 08:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	// 7h40m worked leaves 20 minutes, reported as 0.3 hours.
	clk.set(t, "2026-03-02 15:40")
	status, err := svc.Status(ctx, "user-1")
	require.NoError(t, err)

	require.NotNil(t, status.ActiveEntry)
	assert.InDelta(t, 0.3, status.RemainingHours, 0.001)
	assert.Len(t, status.Entries, 1)
}

func TestStatusRemainingHoursNeverNegative(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 08:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 18:30")
	status, err := svc.Status(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, float64(0), status.RemainingHours)
}

func TestStatusProjectsOpenBreak(t *testing.T) {
	svc, _, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 08:00")
	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.set(t, "2026-03-02 12:00")
	_, err = svc.StartBreak(ctx, "user-1")
	require.NoError(t, err)

	// One hour into the break only 4h count as worked, so 4h remain.
	clk.set(t, "2026-03-02 13:00")
	status, err := svc.Status(ctx, "user-1")
	require.NoError(t, err)

	require.NotNil(t, status.ActiveEntry)
	assert.Equal(t, attendance.ActivityOnBreak, status.ActiveEntry.Activity)
	assert.InDelta(t, 4.0, status.RemainingHours, 0.001)
}

func TestStatusWithoutActiveEntry(t *testing.T) {
	svc, _, clk := newTestService()
	clk.set(t, "2026-03-02 08:00")

	status, err := svc.Status(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Nil(t, status.ActiveEntry)
	assert.Equal(t, float64(0), status.RemainingHours)
	assert.Empty(t, status.Entries)
}

func TestClockOutClampsNegativeTotal(t *testing.T) {
	svc, repo, clk := newTestService()
	ctx := context.Background()

	clk.set(t, "2026-03-02 09:00")
	resp, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	// Corrupt the stored entry so recorded break time exceeds elapsed time.
	entry := repo.entries[resp.ID]
	entry.PauseMinutes = 600

	clk.set(t, "2026-03-02 10:00")
	out, err := svc.ClockOut(ctx, "user-1")
	require.NoError(t, err)

	require.NotNil(t, out.TotalAvailable)
	assert.Equal(t, "00:00", *out.TotalAvailable)
}
