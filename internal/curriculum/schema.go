package curriculum

import "github.com/nvminh/chronos/internal/llm"

// Item schema fragments for the three learning item variants, embedded
// into TextbookSchema below.
var vocabularyItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "The vocabulary word in Japanese, used as a unique ID",
		},
		"word": map[string]any{
			"type":        "string",
			"description": "The vocabulary word in Japanese",
		},
		"furigana": map[string]any{
			"type":        "string",
			"description": "The furigana reading for the word",
		},
		"meaning_vi": map[string]any{
			"type":        "string",
			"description": "The Vietnamese meaning of the word",
		},
		"example_jp": map[string]any{
			"type":        "string",
			"description": "An example sentence in Japanese, with furigana for kanji formatted like [漢字]{かんじ}",
		},
		"example_en": map[string]any{
			"type":        "string",
			"description": "The English translation of the example sentence",
		},
	},
	"required":             []any{"id", "word", "furigana", "meaning_vi", "example_jp", "example_en"},
	"additionalProperties": false,
}

var grammarItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "The grammar point, used as a unique ID",
		},
		"grammar": map[string]any{
			"type":        "string",
			"description": "The grammar point",
		},
		"meaning_vi": map[string]any{
			"type":        "string",
			"description": "The Vietnamese meaning of the grammar point",
		},
		"formation": map[string]any{
			"type":        "string",
			"description": "How the grammar point is formed (e.g., V-plain + こと)",
		},
		"example_jp": map[string]any{
			"type":        "string",
			"description": "An example sentence in Japanese, with furigana for kanji formatted like [漢字]{かんじ}",
		},
		"example_en": map[string]any{
			"type":        "string",
			"description": "The English translation of the example sentence",
		},
	},
	"required":             []any{"id", "grammar", "meaning_vi", "formation", "example_jp", "example_en"},
	"additionalProperties": false,
}

var kanjiItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "The kanji character, used as a unique ID",
		},
		"kanji": map[string]any{
			"type":        "string",
			"description": "The kanji character",
		},
		"on_yomi": map[string]any{
			"type":        "string",
			"description": "The on'yomi reading in katakana",
		},
		"kun_yomi": map[string]any{
			"type":        "string",
			"description": "The kun'yomi reading in hiragana",
		},
		"meaning_vi": map[string]any{
			"type":        "string",
			"description": "The Vietnamese meaning of the kanji",
		},
		"stroke_count": map[string]any{
			"type":        "integer",
			"description": "The number of strokes",
		},
		"radical": map[string]any{
			"type":        "string",
			"description": "The main radical of the kanji",
		},
		"mnemonic_vi": map[string]any{
			"type":        "string",
			"description": "A creative mnemonic in Vietnamese to help remember the kanji",
		},
		"examples": map[string]any{
			"type":        "array",
			"description": "2-3 compound words using this kanji",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"word":       map[string]any{"type": "string"},
					"reading":    map[string]any{"type": "string"},
					"meaning_vi": map[string]any{"type": "string"},
				},
				"required":             []any{"word", "reading", "meaning_vi"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "kanji", "on_yomi", "kun_yomi", "meaning_vi"},
	"additionalProperties": false,
}

// TextbookSchema defines the JSON schema for textbook generation: an
// array of themed chapters with item lists and prerequisite numbers.
var TextbookSchema = &llm.Schema{
	Name:        "n3-textbook",
	Description: "A JLPT N3 textbook as an array of themed chapters",
	Definition: map[string]any{
		"type":        "array",
		"description": "An array of 10 chapters for an N3 textbook",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"chapter": map[string]any{
					"type":        "integer",
					"description": "The chapter number",
				},
				"title": map[string]any{
					"type":        "string",
					"description": `A thematic title for the chapter in Vietnamese (e.g., "Cuộc sống ở Thành phố")`,
				},
				"vocabulary": map[string]any{
					"type":        "array",
					"description": "List of 8-10 related N3 vocabulary words for this chapter",
					"items":       vocabularyItemSchema,
				},
				"grammar": map[string]any{
					"type":        "array",
					"description": "List of 3-4 related N3 grammar points for this chapter",
					"items":       grammarItemSchema,
				},
				"kanji": map[string]any{
					"type":        "array",
					"description": "List of 3-5 N3 kanji related to the theme",
					"items":       kanjiItemSchema,
				},
				"dependencies": map[string]any{
					"type":        "array",
					"description": "An array of prerequisite chapter numbers. Chapter 1 has an empty array.",
					"items":       map[string]any{"type": "integer"},
				},
			},
			"required":             []any{"chapter", "title", "vocabulary", "grammar", "dependencies"},
			"additionalProperties": false,
		},
	},
}

// QuizSchema defines the JSON schema for chapter quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "chapter-quiz",
	Description: "A multiple-choice quiz over one chapter's content",
	Definition: map[string]any{
		"type":        "array",
		"description": "An array of 8 quiz questions",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The quiz question (in Vietnamese for vocabulary, in Japanese for grammar)",
				},
				"options": map[string]any{
					"type":        "array",
					"description": "An array of 4 possible answers",
					"items":       map[string]any{"type": "string"},
				},
				"answerIndex": map[string]any{
					"type":        "integer",
					"description": "The 0-based index of the correct answer in the options array",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A brief explanation in Vietnamese for why the answer is correct",
				},
				"relatedItemId": map[string]any{
					"type":        "string",
					"description": "The id of the vocabulary or grammar item this question tests",
				},
			},
			"required":             []any{"question", "options", "answerIndex", "explanation", "relatedItemId"},
			"additionalProperties": false,
		},
	},
}
