package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// workdayMinutes is the standard 8-hour workday used for remaining-hours.
const workdayMinutes = 480

// recentEntryLimit caps the history slice returned by Status.
const recentEntryLimit = 10

type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(tx database.TxManager, attendanceRepo attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		clock:                clk,
	}
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var total *string
	if att.TotalMinutes != nil {
		formatted := timeutil.FormatMinutes(*att.TotalMinutes)
		total = &formatted
	}
	return attendance.AttendanceResponse{
		ID:             att.ID,
		Date:           att.Date,
		Login:          att.Login,
		Logout:         att.Logout,
		Pause:          timeutil.FormatMinutes(att.PauseMinutes),
		Unavailable:    timeutil.FormatMinutes(att.UnavailableMinutes),
		TotalAvailable: total,
		Status:         att.Status,
		Activity:       att.Activity(),
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now()

	var created attendance.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.AttendanceRepository.GetActiveForUpdate(ctx, userID)
		if err == nil {
			return attendance.ErrAlreadyClockedIn
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check for active entry: %w", err)
		}

		entry := attendance.Attendance{
			ID:     uuid.NewString(),
			UserID: userID,
			Date:   timeutil.DateOf(now),
			Login:  timeutil.TimeOfDay(now),
			Status: attendance.StatusActive,
		}
		created, err = s.AttendanceRepository.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to create attendance entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. Any in-progress break or
// unavailable period is closed first, so a completed entry never carries a
// dangling sub-state.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowStr := timeutil.TimeOfDay(s.clock.Now())

	var entry attendance.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.activeEntry(ctx, userID)
		if err != nil {
			return err
		}

		entry.CloseActivity(nowStr)

		worked := entry.WorkedMinutes(nowStr)
		if worked < 0 {
			// Break and unavailable time exceeded elapsed time. Store zero
			// rather than a negative duration; the raw value is still logged
			// so the data-quality problem stays visible.
			slog.Warn("negative worked minutes at clock-out, clamping to zero",
				"user_id", userID, "date", entry.Date, "worked_minutes", worked)
			worked = 0
		}

		entry.Logout = &nowStr
		entry.TotalMinutes = &worked
		entry.Status = attendance.StatusComplete

		if err := s.AttendanceRepository.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to finalize attendance entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(entry), nil
}

// StartBreak implements attendance.AttendanceService. An in-progress
// unavailable period is closed before the break starts; the two sub-states
// are mutually exclusive.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowStr := timeutil.TimeOfDay(s.clock.Now())

	var entry attendance.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.activeEntry(ctx, userID)
		if err != nil {
			return err
		}
		if entry.PauseStart != nil {
			return attendance.ErrAlreadyOnBreak
		}

		entry.CloseActivity(nowStr)
		entry.PauseStart = &nowStr

		if err := s.AttendanceRepository.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to start break: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(entry), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowStr := timeutil.TimeOfDay(s.clock.Now())

	var entry attendance.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.activeEntry(ctx, userID)
		if err != nil {
			return err
		}
		if entry.PauseStart == nil {
			return attendance.ErrNotOnBreak
		}

		entry.CloseActivity(nowStr)

		if err := s.AttendanceRepository.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to end break: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(entry), nil
}

// StartUnavailable implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartUnavailable(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowStr := timeutil.TimeOfDay(s.clock.Now())

	var entry attendance.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.activeEntry(ctx, userID)
		if err != nil {
			return err
		}
		if entry.UnavailableStart != nil {
			return attendance.ErrAlreadyUnavailable
		}

		entry.CloseActivity(nowStr)
		entry.UnavailableStart = &nowStr

		if err := s.AttendanceRepository.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to start unavailable period: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(entry), nil
}

// EndUnavailable implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndUnavailable(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowStr := timeutil.TimeOfDay(s.clock.Now())

	var entry attendance.Attendance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.activeEntry(ctx, userID)
		if err != nil {
			return err
		}
		if entry.UnavailableStart == nil {
			return attendance.ErrNotUnavailable
		}

		entry.CloseActivity(nowStr)

		if err := s.AttendanceRepository.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to end unavailable period: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(entry), nil
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context, userID string) (attendance.StatusResponse, error) {
	nowStr := timeutil.TimeOfDay(s.clock.Now())

	active, err := s.AttendanceRepository.GetActive(ctx, userID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get active entry: %w", err)
	}

	entries, err := s.AttendanceRepository.ListByUser(ctx, userID, recentEntryLimit)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list entries: %w", err)
	}

	resp := attendance.StatusResponse{
		Entries: make([]attendance.AttendanceResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toResponse(e))
	}

	if active != nil {
		activeResp := toResponse(*active)
		resp.ActiveEntry = &activeResp
		resp.RemainingHours = remainingHours(*active, nowStr)
	}

	return resp, nil
}

// remainingHours projects worked minutes to now, including any in-progress
// sub-state, and reports the hours left in the standard workday rounded to
// one decimal. Never negative.
func remainingHours(entry attendance.Attendance, now string) float64 {
	remaining := float64(workdayMinutes-entry.WorkedMinutes(now)) / 60
	if remaining < 0 {
		return 0
	}
	return math.Round(remaining*10) / 10
}

func (s *AttendanceServiceImpl) activeEntry(ctx context.Context, userID string) (attendance.Attendance, error) {
	entry, err := s.AttendanceRepository.GetActiveForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get active entry: %w", err)
	}
	return entry, nil
}
