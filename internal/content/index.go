package content

// ItemIndex is a lookup map from item ID to LearningItem, built fresh
// from the currently loaded curriculum. Ledger entries whose IDs miss the
// index are treated as expected drift from regenerated curricula, never
// as errors.
type ItemIndex struct {
	byID map[string]LearningItem
}

// NewIndex builds an index over all items in the given chapters.
// Duplicate IDs are tolerated: the first occurrence wins.
func NewIndex(chapters []Chapter) *ItemIndex {
	idx := &ItemIndex{byID: make(map[string]LearningItem)}
	for _, c := range chapters {
		for _, it := range c.AllItems() {
			if it.ID == "" {
				continue
			}
			if _, ok := idx.byID[it.ID]; ok {
				continue
			}
			idx.byID[it.ID] = it
		}
	}
	return idx
}

// Lookup returns the item for an ID and whether it resolved.
func (idx *ItemIndex) Lookup(id string) (LearningItem, bool) {
	it, ok := idx.byID[id]
	return it, ok
}

// Len returns the number of indexed items.
func (idx *ItemIndex) Len() int {
	return len(idx.byID)
}
