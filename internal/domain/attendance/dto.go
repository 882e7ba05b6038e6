package attendance

type AttendanceResponse struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	Login          string   `json:"login"`
	Logout         *string  `json:"logout"`
	Pause          string   `json:"pause"`
	Unavailable    string   `json:"unavailable"`
	TotalAvailable *string  `json:"total_available"`
	Status         Status   `json:"status"`
	Activity       Activity `json:"activity"`
}

// StatusResponse is the payload behind GET /attendance/status: the active
// entry (if any), remaining workday hours, and recent history.
type StatusResponse struct {
	ActiveEntry    *AttendanceResponse  `json:"active_entry"`
	RemainingHours float64              `json:"remaining_hours"`
	Entries        []AttendanceResponse `json:"entries"`
}
