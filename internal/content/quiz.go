package content

// QuizQuestion is a single multiple-choice question generated for a
// chapter. RelatedItemID ties the question back to a learning item so the
// progress ledger can attribute the outcome.
type QuizQuestion struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	AnswerIndex   int      `json:"answerIndex"`
	Explanation   string   `json:"explanation,omitempty"`
	RelatedItemID string   `json:"relatedItemId,omitempty"`
}

// QuestionResult is the per-question outcome reported after a quiz: which
// item the question exercised and whether it was answered correctly.
type QuestionResult struct {
	ItemID  string
	Correct bool
}

// WrongAnswer captures an incorrectly answered question for post-quiz
// analysis.
type WrongAnswer struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
}
