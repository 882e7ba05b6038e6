package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, login, logout, pause_minutes, unavailable_minutes,
	total_minutes, status, pause_start, unavailable_start, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.Login, &att.Logout,
		&att.PauseMinutes, &att.UnavailableMinutes, &att.TotalMinutes,
		&att.Status, &att.PauseStart, &att.UnavailableStart,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	return result, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, user_id, date, login, logout, pause_minutes, unavailable_minutes,
			total_minutes, status, pause_start, unavailable_start
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.Date,
		att.Login,
		att.Logout,
		att.PauseMinutes,
		att.UnavailableMinutes,
		att.TotalMinutes,
		att.Status,
		att.PauseStart,
		att.UnavailableStart,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET logout = $1, pause_minutes = $2, unavailable_minutes = $3,
			total_minutes = $4, status = $5, pause_start = $6,
			unavailable_start = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		att.Logout,
		att.PauseMinutes,
		att.UnavailableMinutes,
		att.TotalMinutes,
		att.Status,
		att.PauseStart,
		att.UnavailableStart,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetActiveForUpdate implements attendance.AttendanceRepository. The row
// lock serializes concurrent state-machine operations for the same user.
func (a *attendanceRepository) GetActiveForUpdate(ctx context.Context, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND status = 'active'
		ORDER BY date DESC
		LIMIT 1
		FOR UPDATE
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID))
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetActive implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetActive(ctx context.Context, userID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND status = 'active'
		ORDER BY date DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active attendance: %w", err)
	}
	return &att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	return collectAttendances(rows)
}

// ListCompleteInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListCompleteInRange(ctx context.Context, from, to string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.login, a.logout, a.pause_minutes,
			   a.unavailable_minutes, a.total_minutes, a.status, a.pause_start,
			   a.unavailable_start, a.created_at, a.updated_at, u.name AS user_name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.status = 'complete' AND a.date >= $1 AND a.date <= $2
		ORDER BY a.date DESC, u.name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list complete attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.Login, &att.Logout,
			&att.PauseMinutes, &att.UnavailableMinutes, &att.TotalMinutes,
			&att.Status, &att.PauseStart, &att.UnavailableStart,
			&att.CreatedAt, &att.UpdatedAt, &att.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	return result, rows.Err()
}

// ListActiveEntries implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListActiveEntries(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE status = 'active'
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active attendances: %w", err)
	}

	return collectAttendances(rows)
}
