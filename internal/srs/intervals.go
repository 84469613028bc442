package srs

// Intervals is the review-interval table in days, indexed by SRS level.
// Level 0 reviews immediately; level 8 reviews after a year.
var Intervals = []int{0, 1, 3, 7, 14, 30, 90, 180, 365}

// MaxLevel is the highest SRS level.
const MaxLevel = 8

// MasteryLevel is the level at or above which an item counts as mastered
// for chapter progress and unlock gating.
const MasteryLevel = 5

// AssessmentSeedLevel is the level assigned when the initial placement
// assessment is answered correctly. A placement hit jumps the learner
// partway up the curve instead of starting at zero.
const AssessmentSeedLevel = 4
