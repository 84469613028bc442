package srs

import (
	"sort"
	"time"

	"github.com/nvminh/chronos/internal/clock"
	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/store"
)

// Ledger tracks per-item spaced-repetition state. Entries are created
// lazily on first interaction; reads of untracked items return a
// synthesized default without persisting it. Insertion order is retained
// as the tie-break for the due-item sort.
type Ledger struct {
	items map[string]*ProgressItem
	order []string
}

// NewLedger builds a ledger from a persisted document. Entries with
// unparsable timestamps are skipped.
func NewLedger(data store.LedgerData) *Ledger {
	l := &Ledger{items: make(map[string]*ProgressItem, len(data.Items))}

	for id, d := range data.Items {
		next, err := time.Parse(time.RFC3339, d.NextReview)
		if err != nil {
			continue
		}
		p := &ProgressItem{
			ID:         id,
			SRSLevel:   clampLevel(d.SRSLevel),
			NextReview: next,
			History:    History{Correct: d.History.Correct, Incorrect: d.History.Incorrect},
		}
		if d.LastCorrect != nil {
			if t, err := time.Parse(time.RFC3339, *d.LastCorrect); err == nil {
				p.LastCorrect = &t
			}
		}
		l.items[id] = p
	}

	// Restore insertion order, then append any entries the order list
	// missed (older documents predate it) in a deterministic order.
	seen := make(map[string]bool, len(l.items))
	for _, id := range data.Order {
		if _, ok := l.items[id]; ok && !seen[id] {
			l.order = append(l.order, id)
			seen[id] = true
		}
	}
	var rest []string
	for id := range l.items {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	l.order = append(l.order, rest...)

	return l
}

// Len returns the number of tracked items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Get returns the progress record for an item, synthesizing the default
// state for untracked items. The returned value is a copy; the default is
// not persisted.
func (l *Ledger) Get(id string, now time.Time) ProgressItem {
	if p, ok := l.items[id]; ok {
		return *p
	}
	return defaultItem(id, now)
}

// Has reports whether the item has a persisted entry.
func (l *Ledger) Has(id string) bool {
	_, ok := l.items[id]
	return ok
}

// Status derives the learning status for an item.
func (l *Ledger) Status(id string, now time.Time) LearningStatus {
	p := l.Get(id, now)
	return p.Status(now)
}

// RecordOutcome applies an answer outcome: promotion by one level on
// correct, demotion to half (floored) on incorrect. The next review is
// scheduled from the interval table at the new level in both branches.
// Returns the updated record.
func (l *Ledger) RecordOutcome(id string, correct bool, now time.Time) ProgressItem {
	p := l.entry(id, now)

	if correct {
		p.SRSLevel = min(p.SRSLevel+1, MaxLevel)
		p.History.Correct++
		t := now
		p.LastCorrect = &t
	} else {
		p.SRSLevel = p.SRSLevel / 2
		p.History.Incorrect++
	}
	p.NextReview = clock.AddDays(now, Intervals[p.SRSLevel])

	return *p
}

// SetStatus applies a manual override. "mastered" forces the level to at
// least MasteryLevel and reschedules at the matching interval; "review"
// makes the item due immediately without touching its level. History is
// never modified. Other statuses are not manually settable; the second
// return is false when nothing changed.
func (l *Ledger) SetStatus(id string, status LearningStatus, now time.Time) (ProgressItem, bool) {
	switch status {
	case StatusMastered:
		p := l.entry(id, now)
		p.SRSLevel = max(MasteryLevel, p.SRSLevel)
		p.NextReview = clock.AddDays(now, Intervals[p.SRSLevel])
		return *p, true
	case StatusReview:
		p := l.entry(id, now)
		p.NextReview = now
		return *p, true
	default:
		return l.Get(id, now), false
	}
}

// Seed writes a placement-assessment result, bypassing the normal
// promotion/demotion rules: a correct answer lands at level 4, an
// incorrect one at 0, with history initialized to exactly that single
// outcome. Any prior entry for the item is replaced.
func (l *Ledger) Seed(id string, correct bool, now time.Time) ProgressItem {
	level := 0
	if correct {
		level = AssessmentSeedLevel
	}

	p := &ProgressItem{
		ID:         id,
		SRSLevel:   level,
		NextReview: clock.AddDays(now, Intervals[level]),
	}
	if correct {
		t := now
		p.LastCorrect = &t
		p.History.Correct = 1
	} else {
		p.History.Incorrect = 1
	}

	if _, ok := l.items[id]; !ok {
		l.order = append(l.order, id)
	}
	l.items[id] = p
	return *p
}

// DueIDs returns the IDs of all tracked items at or past their review
// time, sorted ascending by SRS level so the lowest-retention items
// surface first. Equal levels keep insertion order (stable sort).
func (l *Ledger) DueIDs(now time.Time) []string {
	var due []string
	for _, id := range l.order {
		if l.items[id].IsDue(now) {
			due = append(due, id)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return l.items[due[i]].SRSLevel < l.items[due[j]].SRSLevel
	})
	return due
}

// Due resolves the due IDs through the item index, silently dropping
// entries whose items are no longer in the curriculum. Recomputed on
// every call; nothing is cached across curriculum reloads.
func (l *Ledger) Due(now time.Time, idx *content.ItemIndex) []content.LearningItem {
	var items []content.LearningItem
	for _, id := range l.DueIDs(now) {
		if it, ok := idx.Lookup(id); ok {
			items = append(items, it)
		}
	}
	return items
}

// All returns copies of every tracked entry in insertion order.
func (l *Ledger) All() []ProgressItem {
	out := make([]ProgressItem, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.items[id])
	}
	return out
}

// Snapshot exports the ledger for persistence.
func (l *Ledger) Snapshot() store.LedgerData {
	data := store.LedgerData{
		Items: make(map[string]store.ProgressItemData, len(l.items)),
		Order: append([]string(nil), l.order...),
	}
	for id, p := range l.items {
		d := store.ProgressItemData{
			ID:         id,
			SRSLevel:   p.SRSLevel,
			NextReview: p.NextReview.Format(time.RFC3339),
			History:    store.HistoryData{Correct: p.History.Correct, Incorrect: p.History.Incorrect},
		}
		if p.LastCorrect != nil {
			s := p.LastCorrect.Format(time.RFC3339)
			d.LastCorrect = &s
		}
		data.Items[id] = d
	}
	return data
}

// entry returns the tracked record for an item, creating it at the
// default state on first mutation.
func (l *Ledger) entry(id string, now time.Time) *ProgressItem {
	if p, ok := l.items[id]; ok {
		return p
	}
	p := defaultItem(id, now)
	l.items[id] = &p
	l.order = append(l.order, id)
	return &p
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
