package srs

// LearningStatus describes an item's position in the learning lifecycle
// for display and manual overrides.
type LearningStatus string

const (
	StatusNew      LearningStatus = "new"
	StatusLearning LearningStatus = "learning"
	StatusReview   LearningStatus = "review"
	StatusMastered LearningStatus = "mastered"
)

// ParseStatus returns the status for a string, or false for unknown values.
func ParseStatus(s string) (LearningStatus, bool) {
	switch LearningStatus(s) {
	case StatusNew, StatusLearning, StatusReview, StatusMastered:
		return LearningStatus(s), true
	}
	return "", false
}
