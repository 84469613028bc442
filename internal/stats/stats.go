// Package stats tracks the learner's daily streak, unlocked
// achievements, and the new-user gate for the initial assessment.
package stats

import (
	"slices"
	"time"

	"github.com/nvminh/chronos/internal/clock"
	"github.com/nvminh/chronos/internal/store"
)

// UserStats is the streak/achievements singleton.
type UserStats struct {
	Streak       int
	LastLogin    time.Time // zero when the user has never logged in
	Achievements []string
	IsNewUser    bool
}

// Tracker owns the user stats singleton.
type Tracker struct {
	state UserStats
}

// NewTracker loads a tracker from the persisted document. An unparsable
// lastLogin is treated as never-logged-in.
func NewTracker(data store.UserStatsData) *Tracker {
	state := UserStats{
		Streak:       data.Streak,
		Achievements: append([]string(nil), data.Achievements...),
		IsNewUser:    data.IsNewUser,
	}
	if data.LastLogin != "" {
		if t, err := time.Parse(time.RFC3339, data.LastLogin); err == nil {
			state.LastLogin = t
		}
	}
	return &Tracker{state: state}
}

// Stats returns the current state.
func (t *Tracker) Stats() UserStats {
	s := t.state
	s.Achievements = append([]string(nil), t.state.Achievements...)
	return s
}

// IsNewUser reports whether the initial assessment is still pending.
func (t *Tracker) IsNewUser() bool {
	return t.state.IsNewUser
}

// DailyLoginCheck updates the streak for a new session. Run once per
// session, and skipped entirely while the user is still in the
// assessment flow. Returns whether state changed and whether the streak
// was extended (the extension is what re-triggers achievement checks).
func (t *Tracker) DailyLoginCheck(now time.Time) (changed, extended bool) {
	if t.state.IsNewUser {
		return false, false
	}
	if !t.state.LastLogin.IsZero() && clock.SameDay(t.state.LastLogin, now) {
		return false, false
	}

	if !t.state.LastLogin.IsZero() && clock.IsYesterday(t.state.LastLogin, now) {
		t.state.Streak++
		extended = true
	} else {
		// Any gap resets the streak. No grace period.
		t.state.Streak = 1
	}
	t.state.LastLogin = now
	return true, extended
}

// HasAchievement reports whether the achievement is already unlocked.
func (t *Tracker) HasAchievement(id string) bool {
	return slices.Contains(t.state.Achievements, id)
}

// AddAchievement appends an achievement exactly once. Returns false if
// it was already unlocked.
func (t *Tracker) AddAchievement(id string) bool {
	if t.HasAchievement(id) {
		return false
	}
	t.state.Achievements = append(t.state.Achievements, id)
	return true
}

// CompleteAssessment clears the new-user gate and starts the streak.
// Called exactly once, by the assessment finalizer.
func (t *Tracker) CompleteAssessment(now time.Time) {
	t.state.IsNewUser = false
	t.state.Streak = 1
	t.state.LastLogin = now
}

// Snapshot exports the state for persistence.
func (t *Tracker) Snapshot() store.UserStatsData {
	data := store.UserStatsData{
		Streak:       t.state.Streak,
		Achievements: append([]string(nil), t.state.Achievements...),
		IsNewUser:    t.state.IsNewUser,
	}
	if data.Achievements == nil {
		data.Achievements = []string{}
	}
	if !t.state.LastLogin.IsZero() {
		data.LastLogin = t.state.LastLogin.Format(time.RFC3339)
	}
	return data
}
