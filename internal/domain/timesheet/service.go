package timesheet

import "context"

// TimesheetService builds the admin-facing day-by-day employee status view.
// All timesheet aggregation lives here; route handlers stay thin.
type TimesheetService interface {
	// Report produces one row per (active employee, weekday in range),
	// ordered by date descending then employee name ascending.
	Report(ctx context.Context, filter ReportFilter) ([]DayView, error)

	// Summary counts today's employees per state.
	Summary(ctx context.Context) (SummaryResponse, error)
}
