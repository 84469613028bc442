package analytics

import (
	"testing"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/srs"
)

func testIndex() *content.ItemIndex {
	return content.NewIndex([]content.Chapter{
		{
			Chapter: 1,
			Vocabulary: []content.LearningItem{
				{ID: "v1", Kind: content.KindVocabulary, Word: "会議"},
				{ID: "v2", Kind: content.KindVocabulary, Word: "経験"},
				{ID: "v3", Kind: content.KindVocabulary, Word: "準備"},
			},
			Grammar: []content.LearningItem{
				{ID: "g1", Kind: content.KindGrammar, Grammar: "〜ばかり"},
				{ID: "g2", Kind: content.KindGrammar, Grammar: "〜ように"},
			},
			Kanji: []content.LearningItem{
				{ID: "k1", Kind: content.KindKanji, Kanji: "働"},
			},
		},
	})
}

func entry(id string, correct, incorrect int) srs.ProgressItem {
	return srs.ProgressItem{
		ID:      id,
		History: srs.History{Correct: correct, Incorrect: incorrect},
	}
}

func TestComputeAccuracy(t *testing.T) {
	perf := Compute([]srs.ProgressItem{
		entry("v1", 3, 1),
		entry("g1", 1, 1),
		entry("k1", 0, 2),
	}, testIndex())

	if got, want := perf.OverallAccuracy, 50.0; got != want {
		t.Errorf("overall accuracy = %v, want %v", got, want)
	}
	if got, want := perf.SkillAccuracy.Vocabulary, 75.0; got != want {
		t.Errorf("vocabulary accuracy = %v, want %v", got, want)
	}
	if got, want := perf.SkillAccuracy.Grammar, 50.0; got != want {
		t.Errorf("grammar accuracy = %v, want %v", got, want)
	}
	if got, want := perf.SkillAccuracy.Kanji, 0.0; got != want {
		t.Errorf("kanji accuracy = %v, want %v", got, want)
	}
}

func TestComputeEmptyHistory(t *testing.T) {
	perf := Compute(nil, testIndex())
	if perf.OverallAccuracy != 0 {
		t.Errorf("overall accuracy = %v, want 0", perf.OverallAccuracy)
	}
	if len(perf.WeakestItems) != 0 {
		t.Errorf("weakest items = %d, want 0", len(perf.WeakestItems))
	}
}

func TestWeakestRanking(t *testing.T) {
	// Y (1 correct, 3 incorrect) must rank before X (3 correct, 1 incorrect).
	perf := Compute([]srs.ProgressItem{
		entry("v1", 3, 1),
		entry("v2", 1, 3),
	}, testIndex())

	if len(perf.WeakestItems) != 2 {
		t.Fatalf("weakest items = %d, want 2", len(perf.WeakestItems))
	}
	if perf.WeakestItems[0].Item.ID != "v2" {
		t.Errorf("weakest[0] = %s, want v2", perf.WeakestItems[0].Item.ID)
	}
	if perf.WeakestItems[1].Item.ID != "v1" {
		t.Errorf("weakest[1] = %s, want v1", perf.WeakestItems[1].Item.ID)
	}
}

func TestWeakestTieBreakByIncorrectCount(t *testing.T) {
	// Equal ratios: the item with more mistakes ranks worse.
	perf := Compute([]srs.ProgressItem{
		entry("v1", 2, 2),
		entry("v2", 4, 4),
	}, testIndex())

	if perf.WeakestItems[0].Item.ID != "v2" {
		t.Errorf("weakest[0] = %s, want v2", perf.WeakestItems[0].Item.ID)
	}
}

func TestWeakestExcludesFullyCorrect(t *testing.T) {
	perf := Compute([]srs.ProgressItem{
		entry("v1", 5, 0),
		entry("v2", 1, 1),
	}, testIndex())

	if len(perf.WeakestItems) != 1 || perf.WeakestItems[0].Item.ID != "v2" {
		t.Errorf("weakest = %+v, want only v2", perf.WeakestItems)
	}
}

func TestWeakestCapsAtFive(t *testing.T) {
	perf := Compute([]srs.ProgressItem{
		entry("v1", 0, 6),
		entry("v2", 0, 5),
		entry("v3", 0, 4),
		entry("g1", 0, 3),
		entry("g2", 0, 2),
		entry("k1", 0, 1),
	}, testIndex())

	if len(perf.WeakestItems) != WeakestItemCount {
		t.Fatalf("weakest items = %d, want %d", len(perf.WeakestItems), WeakestItemCount)
	}
	if perf.WeakestItems[0].Item.ID != "v1" {
		t.Errorf("weakest[0] = %s, want v1", perf.WeakestItems[0].Item.ID)
	}
}

func TestStaleEntriesSkipped(t *testing.T) {
	// Entries whose IDs no longer resolve never consume a weakest slot
	// and never distort the totals.
	perf := Compute([]srs.ProgressItem{
		entry("gone-1", 0, 10),
		entry("v1", 9, 1),
	}, testIndex())

	if got, want := perf.OverallAccuracy, 90.0; got != want {
		t.Errorf("overall accuracy = %v, want %v", got, want)
	}
	if len(perf.WeakestItems) != 1 || perf.WeakestItems[0].Item.ID != "v1" {
		t.Errorf("weakest = %+v, want only v1", perf.WeakestItems)
	}
}
