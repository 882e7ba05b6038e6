package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/timeclock-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	StartUnavailable(w http.ResponseWriter, r *http.Request)
	EndUnavailable(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// transition runs one state-machine operation for the authenticated user.
// All six mutations share this shape; only the service call differs.
func (h *AttendanceHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	op func(ctx context.Context, userID string) (attendance.AttendanceResponse, error),
) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := op(r.Context(), userID)
	if err != nil {
		slog.Error(name+" service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, name+" recorded", resp)
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Clock-in", h.attendanceService.ClockIn)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Clock-out", h.attendanceService.ClockOut)
}

// StartBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Break start", h.attendanceService.StartBreak)
}

// EndBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Break end", h.attendanceService.EndBreak)
}

// StartUnavailable implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartUnavailable(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Unavailable start", h.attendanceService.StartUnavailable)
}

// EndUnavailable implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EndUnavailable(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Unavailable end", h.attendanceService.EndUnavailable)
}

// Status implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.attendanceService.Status(r.Context(), userID)
	if err != nil {
		slog.Error("Status service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
