package timesheet

import "github.com/clockwise-hq/timeclock-backend-go/internal/pkg/validator"

// DayStatus classifies one (employee, date) cell of the admin report.
// Precedence: leave over submitted over missing.
type DayStatus string

const (
	DayLeave     DayStatus = "leave"
	DaySubmitted DayStatus = "submitted"
	DayMissing   DayStatus = "missing"
)

type DayView struct {
	Date         string    `json:"date"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Status       DayStatus `json:"status"`

	// HoursWorked is "HH:MM", set only for submitted days.
	HoursWorked *string `json:"hours_worked,omitempty"`
}

// ReportFilter narrows the reporting range. Empty fields default to the
// trailing 30 days ending today, weekends excluded.
type ReportFilter struct {
	StartDate string
	EndDate   string
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SummaryResponse holds today's headcount by state for the admin dashboard.
type SummaryResponse struct {
	Working     int `json:"working"`
	OnBreak     int `json:"on_break"`
	Unavailable int `json:"unavailable"`
	OnLeave     int `json:"on_leave"`
	Submitted   int `json:"submitted"`
	Missing     int `json:"missing"`
}
