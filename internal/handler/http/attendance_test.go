package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	resp       attendance.AttendanceResponse
	status     attendance.StatusResponse
	err        error
	lastUserID string
}

func (s *fakeAttendanceService) call(userID string) (attendance.AttendanceResponse, error) {
	s.lastUserID = userID
	if s.err != nil {
		return attendance.AttendanceResponse{}, s.err
	}
	return s.resp, nil
}

func (s *fakeAttendanceService) ClockIn(_ context.Context, userID string) (attendance.AttendanceResponse, error) {
	return s.call(userID)
}
func (s *fakeAttendanceService) ClockOut(_ context.Context, userID string) (attendance.AttendanceResponse, error) {
	return s.call(userID)
}
func (s *fakeAttendanceService) StartBreak(_ context.Context, userID string) (attendance.AttendanceResponse, error) {
	return s.call(userID)
}
func (s *fakeAttendanceService) EndBreak(_ context.Context, userID string) (attendance.AttendanceResponse, error) {
	return s.call(userID)
}
func (s *fakeAttendanceService) StartUnavailable(_ context.Context, userID string) (attendance.AttendanceResponse, error) {
	return s.call(userID)
}
func (s *fakeAttendanceService) EndUnavailable(_ context.Context, userID string) (attendance.AttendanceResponse, error) {
	return s.call(userID)
}

func (s *fakeAttendanceService) Status(_ context.Context, userID string) (attendance.StatusResponse, error) {
	s.lastUserID = userID
	if s.err != nil {
		return attendance.StatusResponse{}, s.err
	}
	return s.status, nil
}

// authedRequest builds a request whose context carries verified claims, as
// the Verifier middleware would leave them.
func authedRequest(t *testing.T, method, target, userID string) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("handler-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)

	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAttendanceClockInSuccess(t *testing.T) {
	svc := &fakeAttendanceService{resp: attendance.AttendanceResponse{
		ID:       "att-1",
		Date:     "2026-03-02",
		Login:    "08:00",
		Status:   attendance.StatusActive,
		Activity: attendance.ActivityWorking,
	}}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.ClockIn(rec, authedRequest(t, http.MethodPost, "/api/v1/attendance/clock-in", "user-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", svc.lastUserID)

	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "att-1", data["id"])
	assert.Equal(t, "working", data["activity"])
}

func TestAttendanceDoubleClockInConflict(t *testing.T) {
	svc := &fakeAttendanceService{err: attendance.ErrAlreadyClockedIn}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.ClockIn(rec, authedRequest(t, http.MethodPost, "/api/v1/attendance/clock-in", "user-1"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAttendanceClockOutWithoutEntry(t *testing.T) {
	svc := &fakeAttendanceService{err: attendance.ErrNotClockedIn}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.ClockOut(rec, authedRequest(t, http.MethodPost, "/api/v1/attendance/clock-out", "user-1"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceStatus(t *testing.T) {
	svc := &fakeAttendanceService{status: attendance.StatusResponse{
		RemainingHours: 2.5,
		Entries:        []attendance.AttendanceResponse{},
	}}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.Status(rec, authedRequest(t, http.MethodGet, "/api/v1/attendance/status", "user-7"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", svc.lastUserID)

	body := decodeResponse(t, rec)
	data := body["data"].(map[string]interface{})
	assert.InDelta(t, 2.5, data["remaining_hours"], 0.001)
}

func TestAttendanceUnauthenticatedRequest(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", nil)
	r = r.WithContext(jwtauth.NewContext(r.Context(), nil, jwtauth.ErrNoTokenFound))

	rec := httptest.NewRecorder()
	handler.ClockIn(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
