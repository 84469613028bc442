// Package achievements defines the fixed achievement catalog and the
// pure rules that decide when each one unlocks.
package achievements

import (
	"github.com/nvminh/chronos/internal/progress"
	"github.com/nvminh/chronos/internal/stats"
)

// Achievement IDs. The catalog is static and language-agnostic by ID;
// names and descriptions are presentation data.
const (
	FirstStep   = "FIRST_STEP"
	Streak3     = "STREAK_3"
	PerfectQuiz = "PERFECT_QUIZ"
	Level5      = "LEVEL_5"
)

// Achievement is one catalog entry.
type Achievement struct {
	ID          string
	Name        string
	Description string
}

// Catalog lists every achievement in display order. Display text is
// Vietnamese, matching the app's audience.
var Catalog = []Achievement{
	{ID: FirstStep, Name: "Bước đầu tiên", Description: "Hoàn thành bài học đầu tiên."},
	{ID: Streak3, Name: "Nhiệt huyết", Description: "Duy trì chuỗi học 3 ngày."},
	{ID: PerfectQuiz, Name: "Hoàn hảo", Description: "Đạt điểm tuyệt đối trong một bài kiểm tra."},
	{ID: Level5, Name: "Nhà thám hiểm", Description: "Đạt cấp độ 5."},
}

// Lookup returns the catalog entry for an ID.
func Lookup(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// QuizScore is the raw tally of a completed quiz.
type QuizScore struct {
	Score int
	Total int
}

// Perfect reports whether every question was answered correctly. An
// empty quiz never counts as perfect.
func (q QuizScore) Perfect() bool {
	return q.Total > 0 && q.Score == q.Total
}

// Evaluate returns the achievements newly qualified by the given state,
// excluding any already unlocked. It is a pure function; appending to
// the stats tracker is the caller's job.
func Evaluate(p progress.UserProgress, s stats.UserStats, quiz *QuizScore) []Achievement {
	unlocked := make(map[string]bool, len(s.Achievements))
	for _, id := range s.Achievements {
		unlocked[id] = true
	}

	var fresh []Achievement
	add := func(id string) {
		if !unlocked[id] {
			if a, ok := Lookup(id); ok {
				fresh = append(fresh, a)
			}
		}
	}

	if quiz != nil && quiz.Perfect() {
		add(PerfectQuiz)
	}
	if p.Level >= 5 {
		add(Level5)
	}
	if s.Streak >= 3 {
		add(Streak3)
	}
	return fresh
}
