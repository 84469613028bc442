// Package curriculum generates the N3 textbook, chapter quizzes, and
// post-quiz analysis through the LLM provider. The generated textbook is
// cached as a store document so later sessions reuse it.
package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/llm"
	"github.com/nvminh/chronos/internal/store"
)

const (
	textbookMaxTokens = 32768
	quizMaxTokens     = 4096
	analysisMaxTokens = 1024
)

// PerfectQuizMessage is returned for a flawless quiz without an LLM
// round trip.
const PerfectQuizMessage = "Tuyệt vời! Bạn đã trả lời đúng tất cả các câu hỏi. Có vẻ như bạn đã nắm vững kiến thức của chương này. Hãy tiếp tục phát huy!"

// Service generates curriculum content.
type Service struct {
	provider llm.Provider
	docs     store.DocumentRepo
	logger   *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(provider llm.Provider, docs store.DocumentRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, docs: docs, logger: logger}
}

// Textbook returns the cached curriculum, generating and caching it on
// first use. Set force to regenerate even when a cached copy exists.
func (s *Service) Textbook(ctx context.Context, force bool) ([]content.Chapter, error) {
	if !force {
		if chapters, ok := s.cached(ctx); ok {
			return chapters, nil
		}
	}

	chapters, err := s.generateTextbook(ctx)
	if err != nil {
		return nil, err
	}

	if err := store.SaveDocument(ctx, s.docs, store.KeyCurriculum, chapters); err != nil {
		s.logger.Warn("failed to cache curriculum", "error", err)
	}
	return chapters, nil
}

// cached loads the stored curriculum, if any.
func (s *Service) cached(ctx context.Context) ([]content.Chapter, bool) {
	raw, err := s.docs.Load(ctx, store.KeyCurriculum)
	if err != nil || raw == nil {
		return nil, false
	}
	var chapters []content.Chapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		s.logger.Warn("discarding corrupt cached curriculum", "error", err)
		return nil, false
	}
	if len(chapters) == 0 {
		return nil, false
	}
	return chapters, true
}

// generateTextbook asks the LLM for the full 10-chapter curriculum.
func (s *Service) generateTextbook(ctx context.Context) ([]content.Chapter, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTextbook)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:    textbookPrompt,
		Schema:    TextbookSchema,
		MaxTokens: textbookMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate textbook: %w", err)
	}

	var chapters []content.Chapter
	if err := json.Unmarshal(resp.Content, &chapters); err != nil {
		return nil, fmt.Errorf("parse textbook response: %w", err)
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("generate textbook: response contained no chapters")
	}
	return chapters, nil
}

// ChapterQuiz generates the multiple-choice quiz for one chapter.
func (s *Service) ChapterQuiz(ctx context.Context, chapter content.Chapter) ([]content.QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:    buildQuizPrompt(chapter),
		Schema:    QuizSchema,
		MaxTokens: quizMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz for chapter %d: %w", chapter.Chapter, err)
	}

	var questions []content.QuizQuestion
	if err := json.Unmarshal(resp.Content, &questions); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("generate quiz for chapter %d: response contained no questions", chapter.Chapter)
	}
	return questions, nil
}

// AnalyzeQuizResults produces a short Vietnamese analysis of the
// learner's wrong answers. A perfect quiz returns the canned
// congratulation without calling the LLM.
func (s *Service) AnalyzeQuizResults(ctx context.Context, wrong []content.WrongAnswer) (string, error) {
	if len(wrong) == 0 {
		return PerfectQuizMessage, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAnalysis)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:    buildAnalysisPrompt(wrong),
		MaxTokens: analysisMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("analyze quiz results: %w", err)
	}

	return textContent(resp.Content), nil
}

// textContent unwraps a free-text response. Providers may return the
// text either raw or as a JSON-encoded string.
func textContent(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
