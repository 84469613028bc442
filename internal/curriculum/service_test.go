package curriculum

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/llm"
	"github.com/nvminh/chronos/internal/store"
)

// memDocs is an in-memory DocumentRepo for tests.
type memDocs struct {
	data map[string][]byte
}

func newMemDocs() *memDocs {
	return &memDocs{data: make(map[string][]byte)}
}

func (m *memDocs) Load(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memDocs) Save(_ context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

func (m *memDocs) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

const textbookJSON = `[
	{
		"chapter": 1,
		"title": "Cuộc sống ở Thành phố",
		"vocabulary": [
			{"id": "会議", "word": "会議", "furigana": "かいぎ", "meaning_vi": "cuộc họp",
			 "example_jp": "[会議]{かいぎ}があります。", "example_en": "There is a meeting."}
		],
		"grammar": [
			{"id": "〜ばかり", "grammar": "〜ばかり", "meaning_vi": "vừa mới", "formation": "V-た + ばかり",
			 "example_jp": "[食]{た}べたばかりです。", "example_en": "I just ate."}
		],
		"dependencies": []
	}
]`

func TestTextbookGeneratesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Content: json.RawMessage(textbookJSON)})
	docs := newMemDocs()
	svc := NewService(mock, docs, nil)

	chapters, err := svc.Textbook(context.Background(), false)
	if err != nil {
		t.Fatalf("Textbook: %v", err)
	}
	if len(chapters) != 1 || chapters[0].Title != "Cuộc sống ở Thành phố" {
		t.Fatalf("unexpected chapters: %+v", chapters)
	}
	if chapters[0].Vocabulary[0].Kind != content.KindVocabulary {
		t.Errorf("vocabulary kind = %q, want %q", chapters[0].Vocabulary[0].Kind, content.KindVocabulary)
	}

	// Second call must come from the cache, not the provider.
	if _, err := svc.Textbook(context.Background(), false); err != nil {
		t.Fatalf("Textbook (cached): %v", err)
	}
	if got := mock.CallCount(); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
	if docs.data[store.KeyCurriculum] == nil {
		t.Error("curriculum was not cached")
	}
}

func TestTextbookForceRegenerates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: json.RawMessage(textbookJSON)},
		llm.MockReply{Content: json.RawMessage(textbookJSON)},
	)
	svc := NewService(mock, newMemDocs(), nil)

	if _, err := svc.Textbook(context.Background(), false); err != nil {
		t.Fatalf("Textbook: %v", err)
	}
	if _, err := svc.Textbook(context.Background(), true); err != nil {
		t.Fatalf("Textbook (force): %v", err)
	}
	if got := mock.CallCount(); got != 2 {
		t.Errorf("provider calls = %d, want 2", got)
	}
}

func TestTextbookEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Content: json.RawMessage(`[]`)})
	svc := NewService(mock, newMemDocs(), nil)

	if _, err := svc.Textbook(context.Background(), false); err == nil {
		t.Fatal("expected error for empty textbook response")
	}
}

func TestChapterQuiz(t *testing.T) {
	quizJSON := `[
		{"question": "「会議」có nghĩa là gì?", "options": ["cuộc họp", "công ty", "kế hoạch", "kinh nghiệm"],
		 "answerIndex": 0, "explanation": "会議 nghĩa là cuộc họp.", "relatedItemId": "会議"}
	]`
	mock := llm.NewMockProvider(llm.MockReply{Content: json.RawMessage(quizJSON)})
	svc := NewService(mock, newMemDocs(), nil)

	chapter := content.Chapter{
		Chapter: 1,
		Title:   "Cuộc sống ở Thành phố",
		Vocabulary: []content.LearningItem{
			{ID: "会議", Kind: content.KindVocabulary, Word: "会議", MeaningVI: "cuộc họp"},
		},
	}

	questions, err := svc.ChapterQuiz(context.Background(), chapter)
	if err != nil {
		t.Fatalf("ChapterQuiz: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(questions))
	}
	if questions[0].RelatedItemID != "会議" {
		t.Errorf("relatedItemId = %q, want 会議", questions[0].RelatedItemID)
	}
	if questions[0].AnswerIndex != 0 {
		t.Errorf("answerIndex = %d, want 0", questions[0].AnswerIndex)
	}

	// Prompt should carry the chapter content.
	if len(mock.Requests) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Requests))
	}
	prompt := mock.Requests[0].Prompt
	if !strings.Contains(prompt, "会議") {
		t.Error("prompt does not mention chapter vocabulary")
	}
}

func TestAnalyzePerfectQuizSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, newMemDocs(), nil)

	got, err := svc.AnalyzeQuizResults(context.Background(), nil)
	if err != nil {
		t.Fatalf("AnalyzeQuizResults: %v", err)
	}
	if got != PerfectQuizMessage {
		t.Errorf("analysis = %q, want canned congratulation", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestAnalyzeWrongAnswers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{
		Content: json.RawMessage(`"**Phân tích Synapse:** hãy ôn lại 〜ばかり."`),
	})
	svc := NewService(mock, newMemDocs(), nil)

	wrong := []content.WrongAnswer{
		{Question: "ご飯を＿＿＿ところです。", UserAnswer: "食べる", CorrectAnswer: "食べた"},
	}
	got, err := svc.AnalyzeQuizResults(context.Background(), wrong)
	if err != nil {
		t.Fatalf("AnalyzeQuizResults: %v", err)
	}
	if !strings.Contains(got, "Phân tích Synapse") {
		t.Errorf("analysis = %q, want unwrapped text", got)
	}

	prompt := mock.Requests[0].Prompt
	if !strings.Contains(prompt, "食べた") {
		t.Error("prompt does not carry the wrong answers")
	}
}

func TestAnalyzeRawTextResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{
		Content: json.RawMessage("Cố gắng lên, bạn sắp làm được rồi!"),
	})
	svc := NewService(mock, newMemDocs(), nil)

	got, err := svc.AnalyzeQuizResults(context.Background(), []content.WrongAnswer{
		{Question: "q", UserAnswer: "a", CorrectAnswer: "b"},
	})
	if err != nil {
		t.Fatalf("AnalyzeQuizResults: %v", err)
	}
	if got != "Cố gắng lên, bạn sắp làm được rồi!" {
		t.Errorf("analysis = %q", got)
	}
}
