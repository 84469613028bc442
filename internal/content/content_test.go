package content

import (
	"encoding/json"
	"testing"
)

func TestUnmarshal_ResolvesVocabularyKind(t *testing.T) {
	raw := `{"id":"食べる","word":"食べる","furigana":"たべる","meaning_vi":"ăn"}`
	var it LearningItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Kind != KindVocabulary {
		t.Errorf("Kind = %q, want %q", it.Kind, KindVocabulary)
	}
	if it.Label() != "食べる" {
		t.Errorf("Label() = %q, want 食べる", it.Label())
	}
}

func TestUnmarshal_ResolvesGrammarKind(t *testing.T) {
	raw := `{"id":"〜ばかり","grammar":"〜ばかり","formation":"V-た + ばかり"}`
	var it LearningItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Kind != KindGrammar {
		t.Errorf("Kind = %q, want %q", it.Kind, KindGrammar)
	}
}

func TestUnmarshal_ResolvesKanjiKind(t *testing.T) {
	raw := `{"id":"漢","kanji":"漢","on_yomi":"カン"}`
	var it LearningItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Kind != KindKanji {
		t.Errorf("Kind = %q, want %q", it.Kind, KindKanji)
	}
}

func TestUnmarshal_NoDiscriminatingField(t *testing.T) {
	raw := `{"id":"x"}`
	var it LearningItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Kind != "" {
		t.Errorf("Kind = %q, want empty", it.Kind)
	}
}

func TestAllItems_Order(t *testing.T) {
	c := Chapter{
		Vocabulary: []LearningItem{{ID: "v1", Word: "v1", Kind: KindVocabulary}},
		Grammar:    []LearningItem{{ID: "g1", Grammar: "g1", Kind: KindGrammar}},
		Kanji:      []LearningItem{{ID: "k1", Kanji: "k1", Kind: KindKanji}},
	}
	items := c.AllItems()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	want := []string{"v1", "g1", "k1"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, id)
		}
	}
}

func TestNewIndex_DuplicateFirstWins(t *testing.T) {
	chapters := []Chapter{
		{Chapter: 1, Vocabulary: []LearningItem{{ID: "a", Word: "first", Kind: KindVocabulary}}},
		{Chapter: 2, Vocabulary: []LearningItem{{ID: "a", Word: "second", Kind: KindVocabulary}}},
	}
	idx := NewIndex(chapters)
	if idx.Len() != 1 {
		t.Fatalf("Len = %d, want 1", idx.Len())
	}
	it, ok := idx.Lookup("a")
	if !ok {
		t.Fatal("expected lookup hit")
	}
	if it.Word != "first" {
		t.Errorf("Word = %q, want first occurrence", it.Word)
	}
}

func TestIndex_LookupMiss(t *testing.T) {
	idx := NewIndex(nil)
	if _, ok := idx.Lookup("ghost"); ok {
		t.Error("expected lookup miss on empty index")
	}
}

func TestFindChapter(t *testing.T) {
	chapters := []Chapter{{Chapter: 1}, {Chapter: 3}}
	if _, ok := FindChapter(chapters, 3); !ok {
		t.Error("expected chapter 3 found")
	}
	if _, ok := FindChapter(chapters, 2); ok {
		t.Error("expected chapter 2 missing")
	}
}
