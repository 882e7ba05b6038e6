package http

import (
	"log/slog"
	"net/http"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hq/timeclock-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Report implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.ReportFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	report, err := h.timesheetService.Report(r.Context(), filter)
	if err != nil {
		slog.Error("Timesheet report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Summary implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.timesheetService.Summary(r.Context())
	if err != nil {
		slog.Error("Timesheet summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
