package srs

import (
	"time"
)

// History is the cumulative correct/incorrect tally for one item. Counts
// never decrease and are never reset, including by manual overrides.
type History struct {
	Correct   int
	Incorrect int
}

// Total returns the number of recorded outcomes.
func (h History) Total() int {
	return h.Correct + h.Incorrect
}

// ProgressItem is the spaced-repetition record for a single learning
// item. Entries exist only for items the learner has interacted with;
// unseen items get a synthesized default on read.
type ProgressItem struct {
	ID          string
	SRSLevel    int
	NextReview  time.Time
	LastCorrect *time.Time
	History     History
}

// IsDue reports whether the item is at or past its scheduled review.
func (p *ProgressItem) IsDue(now time.Time) bool {
	return !now.Before(p.NextReview)
}

// Status derives the learning status for display.
func (p *ProgressItem) Status(now time.Time) LearningStatus {
	if p.SRSLevel >= MasteryLevel {
		return StatusMastered
	}
	if p.SRSLevel > 0 && p.IsDue(now) {
		return StatusReview
	}
	if p.SRSLevel > 0 {
		return StatusLearning
	}
	return StatusNew
}

// WeaknessRatio returns correct/incorrect, the ranking key for the
// weakest-items view. Only meaningful when Incorrect > 0.
func (p *ProgressItem) WeaknessRatio() float64 {
	return float64(p.History.Correct) / float64(p.History.Incorrect)
}

// defaultItem synthesizes the virtual state for an unseen item: level 0,
// due now, empty history. It is never persisted until first mutated.
func defaultItem(id string, now time.Time) ProgressItem {
	return ProgressItem{
		ID:         id,
		SRSLevel:   0,
		NextReview: now,
	}
}
