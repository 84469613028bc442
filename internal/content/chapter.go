package content

// Chapter groups learning items under a numbered, themed unit of the
// generated textbook. Dependencies lists prerequisite chapter numbers
// that gate access to this chapter.
type Chapter struct {
	Chapter      int            `json:"chapter"`
	Title        string         `json:"title"`
	Vocabulary   []LearningItem `json:"vocabulary"`
	Grammar      []LearningItem `json:"grammar"`
	Kanji        []LearningItem `json:"kanji,omitempty"`
	Dependencies []int          `json:"dependencies,omitempty"`
}

// AllItems returns the chapter's vocabulary, grammar, and kanji items in
// that order.
func (c Chapter) AllItems() []LearningItem {
	items := make([]LearningItem, 0, len(c.Vocabulary)+len(c.Grammar)+len(c.Kanji))
	items = append(items, c.Vocabulary...)
	items = append(items, c.Grammar...)
	items = append(items, c.Kanji...)
	return items
}

// FindChapter returns the chapter with the given number, or false if the
// set does not contain it.
func FindChapter(chapters []Chapter, number int) (Chapter, bool) {
	for _, c := range chapters {
		if c.Chapter == number {
			return c, true
		}
	}
	return Chapter{}, false
}
