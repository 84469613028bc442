// Package progress tracks the learner's level and experience points.
package progress

import (
	"math"

	"github.com/nvminh/chronos/internal/store"
)

// XP awards for the different activity types.
const (
	XPPerSRSCorrect      = 10 // per correct spaced-repetition answer
	XPPerQuizCorrect     = 5  // per correct quiz answer
	XPPerPracticeCorrect = 2  // per correct contextual-practice attempt
)

// BaseXP is the XP required to go from level 1 to level 2. Each further
// level costs 10% more, compounding.
const BaseXP = 250

// UserProgress is the level/XP accumulator. XP is always kept below
// XPToNextLevel; awards that cross the threshold trigger level-ups until
// the invariant holds again.
type UserProgress struct {
	Level         int
	XP            int
	XPToNextLevel int
}

// NewUserProgress returns the starting state: level 1, no XP.
func NewUserProgress() UserProgress {
	return UserProgress{Level: 1, XP: 0, XPToNextLevel: BaseXP}
}

// ThresholdFor returns the XP required to advance past the given level:
// floor(BaseXP * 1.1^(level-1)). The floor (not round) matters for the
// leveling curve to be reproducible.
func ThresholdFor(level int) int {
	return int(math.Floor(BaseXP * math.Pow(1.1, float64(level-1))))
}

// Tracker owns the user progress singleton.
type Tracker struct {
	state UserProgress
}

// NewTracker loads a tracker from the persisted document, normalizing
// out-of-range values back to defaults.
func NewTracker(data store.UserProgressData) *Tracker {
	state := UserProgress{
		Level:         data.Level,
		XP:            data.XP,
		XPToNextLevel: data.XPToNextLevel,
	}
	if state.Level < 1 {
		state = NewUserProgress()
	}
	if state.XPToNextLevel <= 0 {
		state.XPToNextLevel = ThresholdFor(state.Level)
	}
	return &Tracker{state: state}
}

// Progress returns the current state.
func (t *Tracker) Progress() UserProgress {
	return t.state
}

// AwardXP adds experience and performs any level-ups the award crosses.
// It returns the levels reached, in ascending order, so the caller can
// emit one notification per level and re-evaluate achievements. A
// negative amount is ignored.
func (t *Tracker) AwardXP(amount int) []int {
	if amount <= 0 {
		return nil
	}

	t.state.XP += amount

	var levelsReached []int
	for t.state.XP >= t.state.XPToNextLevel {
		t.state.XP -= t.state.XPToNextLevel
		t.state.Level++
		t.state.XPToNextLevel = ThresholdFor(t.state.Level)
		levelsReached = append(levelsReached, t.state.Level)
	}
	return levelsReached
}

// Snapshot exports the state for persistence.
func (t *Tracker) Snapshot() store.UserProgressData {
	return store.UserProgressData{
		Level:         t.state.Level,
		XP:            t.state.XP,
		XPToNextLevel: t.state.XPToNextLevel,
	}
}
