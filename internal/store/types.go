package store

// Persisted document shapes. Timestamps are RFC3339 strings, matching the
// layout the original web client wrote to browser storage.

// HistoryData is the cumulative correct/incorrect tally for one item.
// Counts only ever increase.
type HistoryData struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// ProgressItemData is one spaced-repetition ledger entry.
type ProgressItemData struct {
	ID          string      `json:"id"`
	SRSLevel    int         `json:"srsLevel"`
	NextReview  string      `json:"nextReview"`
	LastCorrect *string     `json:"lastCorrect"`
	History     HistoryData `json:"history"`
}

// LedgerData is the item-progress document: entries keyed by item ID plus
// the insertion order, which the due-item sort uses as its tie-break.
type LedgerData struct {
	Items map[string]ProgressItemData `json:"items"`
	Order []string                    `json:"order"`
}

// UserProgressData is the level/XP document.
type UserProgressData struct {
	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

// UserStatsData is the streak/achievements document.
type UserStatsData struct {
	Streak       int      `json:"streak"`
	LastLogin    string   `json:"lastLogin"`
	Achievements []string `json:"achievements"`
	IsNewUser    bool     `json:"isNewUser"`
}
