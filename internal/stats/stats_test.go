package stats

import (
	"testing"
	"time"

	"github.com/nvminh/chronos/internal/store"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, 5, d, hour, 0, 0, 0, time.Local)
}

func returningUser(streak int, lastLogin time.Time) *Tracker {
	return NewTracker(store.UserStatsData{
		Streak:    streak,
		LastLogin: lastLogin.Format(time.RFC3339),
		IsNewUser: false,
	})
}

func TestDailyLoginCheck_SameDayNoChange(t *testing.T) {
	tr := returningUser(3, day(10, 8))
	changed, extended := tr.DailyLoginCheck(day(10, 22))
	if changed || extended {
		t.Error("same-day login must be a no-op")
	}
	if tr.Stats().Streak != 3 {
		t.Errorf("streak = %d, want 3", tr.Stats().Streak)
	}
}

func TestDailyLoginCheck_YesterdayExtends(t *testing.T) {
	tr := returningUser(3, day(10, 23))
	changed, extended := tr.DailyLoginCheck(day(11, 1))
	if !changed || !extended {
		t.Error("consecutive-day login must extend the streak")
	}
	s := tr.Stats()
	if s.Streak != 4 {
		t.Errorf("streak = %d, want 4", s.Streak)
	}
	if !s.LastLogin.Equal(day(11, 1)) {
		t.Errorf("lastLogin = %v, want updated", s.LastLogin)
	}
}

func TestDailyLoginCheck_GapResets(t *testing.T) {
	tr := returningUser(9, day(8, 12))
	changed, extended := tr.DailyLoginCheck(day(11, 9))
	if !changed {
		t.Error("expected change")
	}
	if extended {
		t.Error("a gap must not extend")
	}
	if tr.Stats().Streak != 1 {
		t.Errorf("streak = %d, want reset to 1", tr.Stats().Streak)
	}
}

func TestDailyLoginCheck_NoPriorLogin(t *testing.T) {
	tr := NewTracker(store.UserStatsData{IsNewUser: false})
	changed, extended := tr.DailyLoginCheck(day(11, 9))
	if !changed || extended {
		t.Errorf("changed=%v extended=%v, want changed without extension", changed, extended)
	}
	if tr.Stats().Streak != 1 {
		t.Errorf("streak = %d, want 1", tr.Stats().Streak)
	}
}

func TestDailyLoginCheck_SkippedForNewUser(t *testing.T) {
	tr := NewTracker(store.UserStatsData{IsNewUser: true})
	changed, _ := tr.DailyLoginCheck(day(11, 9))
	if changed {
		t.Error("login check must be skipped during the assessment flow")
	}
}

func TestAddAchievement_Idempotent(t *testing.T) {
	tr := NewTracker(store.UserStatsData{})
	if !tr.AddAchievement("PERFECT_QUIZ") {
		t.Error("first add must succeed")
	}
	if tr.AddAchievement("PERFECT_QUIZ") {
		t.Error("second add must be rejected")
	}
	if got := len(tr.Stats().Achievements); got != 1 {
		t.Errorf("achievements count = %d, want exactly 1", got)
	}
}

func TestCompleteAssessment(t *testing.T) {
	tr := NewTracker(store.UserStatsData{IsNewUser: true})
	now := day(12, 15)
	tr.CompleteAssessment(now)
	s := tr.Stats()
	if s.IsNewUser {
		t.Error("isNewUser must be cleared")
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1", s.Streak)
	}
	if !s.LastLogin.Equal(now) {
		t.Errorf("lastLogin = %v, want %v", s.LastLogin, now)
	}
}

func TestNewTracker_UnparsableLastLogin(t *testing.T) {
	tr := NewTracker(store.UserStatsData{LastLogin: "garbage", Streak: 5})
	if !tr.Stats().LastLogin.IsZero() {
		t.Error("unparsable lastLogin must read as never-logged-in")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tr := returningUser(2, day(10, 9))
	tr.AddAchievement("STREAK_3")
	restored := NewTracker(tr.Snapshot())
	if restored.Stats().Streak != 2 || !restored.HasAchievement("STREAK_3") {
		t.Errorf("restored = %+v", restored.Stats())
	}
}

func TestSnapshot_EmptyAchievementsSerializesAsList(t *testing.T) {
	tr := NewTracker(store.UserStatsData{})
	if tr.Snapshot().Achievements == nil {
		t.Error("achievements must serialize as [], not null")
	}
}
