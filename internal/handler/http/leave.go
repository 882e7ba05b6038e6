package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/leave"
	"github.com/clockwise-hq/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)

	// Admin only
	ListAll(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Submit(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Submit leave service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "user_id", userID, "leave_id", resp.ID)
	response.Created(w, "Leave request submitted", resp)
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if err := h.leaveService.Cancel(r.Context(), userID, requestID); err != nil {
		slog.Error("Cancel leave service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("List leave service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Summary implements LeaveHandler.
func (h *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.leaveService.Summary(r.Context(), userID)
	if err != nil {
		slog.Error("Leave summary service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("List all leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Review implements LeaveHandler.
func (h *LeaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var reviewReq leave.ReviewLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Review leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reviewReq.ID = chi.URLParam(r, "id")

	if err := h.leaveService.Review(r.Context(), reviewerID, reviewReq); err != nil {
		slog.Error("Review leave service error", "error", err, "reviewer_id", reviewerID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request reviewed", "leave_id", reviewReq.ID, "decision", reviewReq.Status)
	response.SuccessWithMessage(w, "Leave request reviewed", nil)
}
