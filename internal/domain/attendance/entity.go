package attendance

import (
	"time"

	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/timeutil"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusComplete Status = "complete"
)

// Activity is the sub-state of an active entry. Break and unavailable are
// mutually exclusive: at most one start marker is set at any time.
type Activity string

const (
	ActivityWorking     Activity = "working"
	ActivityOnBreak     Activity = "on_break"
	ActivityUnavailable Activity = "unavailable"
)

// Attendance is one user's clock-in-to-clock-out session for a given day.
// Times of day are "HH:MM" strings; accumulators hold finalized minutes only.
type Attendance struct {
	ID                 string
	UserID             string
	Date               string // work day, "YYYY-MM-DD"
	Login              string // "HH:MM"
	Logout             *string
	PauseMinutes       int
	UnavailableMinutes int
	TotalMinutes       *int // minutes actually worked, set at clock-out
	Status             Status
	PauseStart         *string
	UnavailableStart   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Join
	UserName *string
}

// Activity reports the current sub-state of the entry.
func (a *Attendance) Activity() Activity {
	switch {
	case a.PauseStart != nil:
		return ActivityOnBreak
	case a.UnavailableStart != nil:
		return ActivityUnavailable
	default:
		return ActivityWorking
	}
}

// CloseActivity finalizes whichever sub-state is in progress, folding the
// elapsed minutes into its accumulator and clearing the start marker. Every
// transition routes through here, so no entry is ever left with a dangling
// sub-state.
func (a *Attendance) CloseActivity(now string) {
	switch {
	case a.PauseStart != nil:
		a.PauseMinutes += timeutil.MinutesBetween(*a.PauseStart, now)
		a.PauseStart = nil
	case a.UnavailableStart != nil:
		a.UnavailableMinutes += timeutil.MinutesBetween(*a.UnavailableStart, now)
		a.UnavailableStart = nil
	}
}

// WorkedMinutes computes live worked minutes as of now: elapsed time since
// login minus break and unavailable time, with any in-progress sub-state
// projected to now. May go negative when sub-state time exceeds elapsed
// time; callers decide whether to clamp.
func (a *Attendance) WorkedMinutes(now string) int {
	elapsed := timeutil.MinutesBetween(a.Login, now)
	pause := a.PauseMinutes
	unavailable := a.UnavailableMinutes
	if a.PauseStart != nil {
		pause += timeutil.MinutesBetween(*a.PauseStart, now)
	}
	if a.UnavailableStart != nil {
		unavailable += timeutil.MinutesBetween(*a.UnavailableStart, now)
	}
	return elapsed - (pause + unavailable)
}
