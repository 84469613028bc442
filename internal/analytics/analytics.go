// Package analytics computes on-demand performance views over the full
// progress ledger. Nothing here is cached; every snapshot reflects the
// ledger and curriculum as they are at call time.
package analytics

import (
	"sort"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/srs"
)

// WeakestItemCount is how many items the weakest-items view returns.
const WeakestItemCount = 5

// SkillAccuracy holds percentage accuracy per item kind.
type SkillAccuracy struct {
	Vocabulary float64
	Grammar    float64
	Kanji      float64
}

// WeakItem pairs a struggling item with its progress record.
type WeakItem struct {
	Item     content.LearningItem
	Progress srs.ProgressItem
}

// PerformanceData is the full analytics snapshot.
type PerformanceData struct {
	OverallAccuracy float64
	SkillAccuracy   SkillAccuracy
	WeakestItems    []WeakItem
}

// Compute aggregates the ledger entries against the current item index.
// Entries whose IDs no longer resolve are treated as stale curriculum
// drift and skipped; their skill type cannot be determined.
func Compute(entries []srs.ProgressItem, idx *content.ItemIndex) PerformanceData {
	var totalCorrect, totalIncorrect int
	type tally struct{ correct, incorrect int }
	byKind := map[content.ItemKind]*tally{
		content.KindVocabulary: {},
		content.KindGrammar:    {},
		content.KindKanji:      {},
	}

	var weak []WeakItem
	for _, p := range entries {
		item, ok := idx.Lookup(p.ID)
		if !ok {
			continue
		}

		totalCorrect += p.History.Correct
		totalIncorrect += p.History.Incorrect

		if t, ok := byKind[item.Kind]; ok {
			t.correct += p.History.Correct
			t.incorrect += p.History.Incorrect
		}

		// Candidates for the weakest view are filtered here, before the
		// top-5 cut, so stale entries never consume a slot.
		if p.History.Incorrect > 0 {
			weak = append(weak, WeakItem{Item: item, Progress: p})
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		ri := weak[i].Progress.WeaknessRatio()
		rj := weak[j].Progress.WeaknessRatio()
		if ri != rj {
			return ri < rj
		}
		// At equal ratio, more mistakes ranks worse.
		return weak[i].Progress.History.Incorrect > weak[j].Progress.History.Incorrect
	})
	if len(weak) > WeakestItemCount {
		weak = weak[:WeakestItemCount]
	}

	return PerformanceData{
		OverallAccuracy: accuracy(totalCorrect, totalIncorrect),
		SkillAccuracy: SkillAccuracy{
			Vocabulary: accuracy(byKind[content.KindVocabulary].correct, byKind[content.KindVocabulary].incorrect),
			Grammar:    accuracy(byKind[content.KindGrammar].correct, byKind[content.KindGrammar].incorrect),
			Kanji:      accuracy(byKind[content.KindKanji].correct, byKind[content.KindKanji].incorrect),
		},
		WeakestItems: weak,
	}
}

// accuracy returns correct/(correct+incorrect) as a percentage, or 0
// when there is no history.
func accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
