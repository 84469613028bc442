package content

import "encoding/json"

// ItemKind discriminates the three learning item variants.
type ItemKind string

const (
	KindVocabulary ItemKind = "vocabulary"
	KindGrammar    ItemKind = "grammar"
	KindKanji      ItemKind = "kanji"
)

// DisplayName returns a human-readable label for the kind.
func (k ItemKind) DisplayName() string {
	switch k {
	case KindVocabulary:
		return "Vocabulary"
	case KindGrammar:
		return "Grammar"
	case KindKanji:
		return "Kanji"
	default:
		return string(k)
	}
}

// KanjiExample is a compound word illustrating a kanji reading.
type KanjiExample struct {
	Word      string `json:"word"`
	Reading   string `json:"reading"`
	MeaningVI string `json:"meaning_vi"`
}

// LearningItem is a single unit of curriculum content. The Kind field
// discriminates which variant fields are populated. Items arrive from the
// generator without an explicit kind; it is resolved once at ingestion
// from which discriminating field is present (word, grammar, or kanji).
type LearningItem struct {
	ID   string   `json:"id"`
	Kind ItemKind `json:"kind,omitempty"`

	// Vocabulary fields.
	Word      string `json:"word,omitempty"`
	Furigana  string `json:"furigana,omitempty"`
	WordType  string `json:"type,omitempty"`

	// Grammar fields.
	Grammar   string `json:"grammar,omitempty"`
	Formation string `json:"formation,omitempty"`

	// Kanji fields.
	Kanji       string         `json:"kanji,omitempty"`
	OnYomi      string         `json:"on_yomi,omitempty"`
	KunYomi     string         `json:"kun_yomi,omitempty"`
	StrokeCount int            `json:"stroke_count,omitempty"`
	Radical     string         `json:"radical,omitempty"`
	MnemonicVI  string         `json:"mnemonic_vi,omitempty"`
	Examples    []KanjiExample `json:"examples,omitempty"`

	// Shared fields.
	MeaningVI     string `json:"meaning_vi,omitempty"`
	ExplanationVI string `json:"explanation_vi,omitempty"`
	ExampleJP     string `json:"example_jp,omitempty"`
	ExampleEN     string `json:"example_en,omitempty"`
}

// Label returns the headword for display: the word, grammar pattern, or
// kanji character depending on the variant.
func (it LearningItem) Label() string {
	switch it.Kind {
	case KindGrammar:
		return it.Grammar
	case KindKanji:
		return it.Kanji
	default:
		return it.Word
	}
}

// resolveKind infers the variant from field presence. Returns "" when no
// discriminating field is set.
func (it LearningItem) resolveKind() ItemKind {
	switch {
	case it.Word != "":
		return KindVocabulary
	case it.Grammar != "":
		return KindGrammar
	case it.Kanji != "":
		return KindKanji
	default:
		return ""
	}
}

// UnmarshalJSON decodes an item and resolves its kind at ingestion, so
// consumers never have to sniff variant fields again.
func (it *LearningItem) UnmarshalJSON(data []byte) error {
	type plain LearningItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*it = LearningItem(p)
	if it.Kind == "" {
		it.Kind = it.resolveKind()
	}
	return nil
}
