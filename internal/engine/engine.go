// Package engine composes the progress ledger, XP tracker, stats tracker,
// and notification sink behind a single mutation surface. Every learning
// event flows through here; callers never touch the trackers directly.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nvminh/chronos/internal/achievements"
	"github.com/nvminh/chronos/internal/analytics"
	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/notify"
	"github.com/nvminh/chronos/internal/progress"
	"github.com/nvminh/chronos/internal/srs"
	"github.com/nvminh/chronos/internal/stats"
	"github.com/nvminh/chronos/internal/store"
)

// ChapterUnlockThreshold is the mastered fraction every prerequisite
// chapter must reach before a chapter unlocks.
const ChapterUnlockThreshold = 0.75

// Review event sources.
const (
	SourceQuiz       = "quiz"
	SourceReview     = "review"
	SourcePractice   = "practice"
	SourceAssessment = "assessment"
)

// Config wires an Engine's collaborators.
type Config struct {
	Documents store.DocumentRepo
	Events    store.EventRepo
	Chapters  []content.Chapter
	Sink      *notify.Sink
	Logger    *slog.Logger

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// Engine is the orchestrator. It is not safe for concurrent use; the CLI
// runs one command at a time.
type Engine struct {
	docs     store.DocumentRepo
	events   store.EventRepo
	chapters []content.Chapter
	idx      *content.ItemIndex
	sink     *notify.Sink
	logger   *slog.Logger
	now      func() time.Time

	ledger   *srs.Ledger
	progress *progress.Tracker
	stats    *stats.Tracker
}

// ChapterProgress summarizes mastery over one chapter.
type ChapterProgress struct {
	Mastered   int
	Total      int
	Percentage float64
}

// Load builds an Engine from stored state. Missing or corrupt documents
// fall back to their documented defaults; a fresh database yields a new
// user awaiting the placement assessment.
func Load(ctx context.Context, cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	sink := cfg.Sink
	if sink == nil {
		sink = notify.NewSink(notify.DefaultTTL)
	}

	ledgerData := store.LoadDocument(ctx, cfg.Documents, store.KeyItemProgress, store.LedgerData{}, logger)
	progressData := store.LoadDocument(ctx, cfg.Documents, store.KeyUserProgress, store.UserProgressData{
		Level: 1, XP: 0, XPToNextLevel: progress.BaseXP,
	}, logger)
	statsData := store.LoadDocument(ctx, cfg.Documents, store.KeyUserStats, store.UserStatsData{
		IsNewUser: true,
	}, logger)

	return &Engine{
		docs:     cfg.Documents,
		events:   cfg.Events,
		chapters: cfg.Chapters,
		idx:      content.NewIndex(cfg.Chapters),
		sink:     sink,
		logger:   logger,
		now:      now,
		ledger:   srs.NewLedger(ledgerData),
		progress: progress.NewTracker(progressData),
		stats:    stats.NewTracker(statsData),
	}
}

// Chapters returns the loaded curriculum.
func (e *Engine) Chapters() []content.Chapter {
	return e.chapters
}

// Index returns the item index over the loaded curriculum.
func (e *Engine) Index() *content.ItemIndex {
	return e.idx
}

// Progress returns the current level/XP state.
func (e *Engine) Progress() progress.UserProgress {
	return e.progress.Progress()
}

// Stats returns the current streak/achievement state.
func (e *Engine) Stats() stats.UserStats {
	return e.stats.Stats()
}

// Notifications returns the active notifications, pruning expired ones.
func (e *Engine) Notifications() []notify.Notification {
	return e.sink.Active(e.now())
}

// ItemProgress returns the ledger record for an item, synthesizing the
// default for untracked IDs.
func (e *Engine) ItemProgress(id string) srs.ProgressItem {
	return e.ledger.Get(id, e.now())
}

// ItemStatus derives the learning status for an item.
func (e *Engine) ItemStatus(id string) srs.LearningStatus {
	return e.ledger.Status(id, e.now())
}

// DueItems returns the items due for review, weakest retention first,
// mapped through the curriculum index.
func (e *Engine) DueItems() []content.LearningItem {
	return e.ledger.Due(e.now(), e.idx)
}

// Performance computes the analytics snapshot for the current ledger.
func (e *Engine) Performance() analytics.PerformanceData {
	return analytics.Compute(e.ledger.All(), e.idx)
}

// DailyLoginCheck applies the streak rules for a session start: same day
// is a no-op, a yesterday login extends the streak, anything else resets
// it to 1. Skipped while the user has not finished the assessment.
func (e *Engine) DailyLoginCheck(ctx context.Context) stats.UserStats {
	changed, extended := e.stats.DailyLoginCheck(e.now())
	if extended {
		e.unlock(achievements.Evaluate(e.progress.Progress(), e.stats.Stats(), nil))
	}
	if changed {
		e.saveStats(ctx)
	}
	return e.stats.Stats()
}

// RecordQuizResult applies a completed chapter quiz: score*5 XP, one
// ledger outcome per question, and the first-quiz achievement when at
// least one answer was correct.
func (e *Engine) RecordQuizResult(ctx context.Context, score, total int, results []content.QuestionResult) {
	e.awardXP(score*progress.XPPerQuizCorrect, &achievements.QuizScore{Score: score, Total: total})

	for _, r := range results {
		e.applyOutcome(ctx, r.ItemID, r.Correct, SourceQuiz)
	}

	if score > 0 && !e.stats.HasAchievement(achievements.FirstStep) {
		if a, ok := achievements.Lookup(achievements.FirstStep); ok {
			e.unlock([]achievements.Achievement{a})
		}
	}

	e.saveLedger(ctx)
	e.saveProgress(ctx)
	e.saveStats(ctx)
}

// RecordReview applies a single review-session outcome to the ledger.
func (e *Engine) RecordReview(ctx context.Context, itemID string, correct bool) srs.ProgressItem {
	rec := e.applyOutcome(ctx, itemID, correct, SourceReview)
	e.saveLedger(ctx)
	e.saveProgress(ctx)
	e.saveStats(ctx)
	return rec
}

// RecordPracticeResult awards XP for one correct contextual exercise.
// Practice never touches the ledger.
func (e *Engine) RecordPracticeResult(ctx context.Context) {
	e.awardXP(progress.XPPerPracticeCorrect, nil)
	e.saveProgress(ctx)
	e.saveStats(ctx)
}

// MarkItemStatus applies a manual status override. Only "mastered" and
// "review" are settable; anything else reports false.
func (e *Engine) MarkItemStatus(ctx context.Context, itemID string, status srs.LearningStatus) (srs.ProgressItem, bool) {
	rec, ok := e.ledger.SetStatus(itemID, status, e.now())
	if ok {
		e.saveLedger(ctx)
	}
	return rec, ok
}

// FinishAssessment seeds the ledger from the placement assessment and
// activates the account: correct answers start at level 4, incorrect at
// 0, and the new-user gate drops with the streak set to 1.
func (e *Engine) FinishAssessment(ctx context.Context, results []content.QuestionResult) {
	now := e.now()
	for _, r := range results {
		rec := e.ledger.Seed(r.ItemID, r.Correct, now)
		e.appendReview(ctx, r.ItemID, r.Correct, SourceAssessment, rec.SRSLevel)
	}
	e.stats.CompleteAssessment(now)

	e.saveLedger(ctx)
	e.saveStats(ctx)
}

// ChapterProgressFor counts mastered items in a chapter. An empty
// chapter reports zero progress.
func (e *Engine) ChapterProgressFor(chapter content.Chapter) ChapterProgress {
	items := chapter.AllItems()
	if len(items) == 0 {
		return ChapterProgress{}
	}

	now := e.now()
	mastered := 0
	for _, it := range items {
		if e.ledger.Get(it.ID, now).SRSLevel >= srs.MasteryLevel {
			mastered++
		}
	}
	return ChapterProgress{
		Mastered:   mastered,
		Total:      len(items),
		Percentage: float64(mastered) / float64(len(items)),
	}
}

// IsChapterUnlocked reports whether every prerequisite chapter is at
// least 75% mastered. A dependency missing from the curriculum locks
// the chapter.
func (e *Engine) IsChapterUnlocked(chapter content.Chapter) bool {
	for _, dep := range chapter.Dependencies {
		prereq, ok := content.FindChapter(e.chapters, dep)
		if !ok {
			return false
		}
		if e.ChapterProgressFor(prereq).Percentage < ChapterUnlockThreshold {
			return false
		}
	}
	return true
}

// applyOutcome records one answer against the ledger, logs the review
// event, and awards XP on a correct answer.
func (e *Engine) applyOutcome(ctx context.Context, itemID string, correct bool, source string) srs.ProgressItem {
	rec := e.ledger.RecordOutcome(itemID, correct, e.now())
	e.appendReview(ctx, itemID, correct, source, rec.SRSLevel)
	if correct {
		e.awardXP(progress.XPPerSRSCorrect, nil)
	}
	return rec
}

// awardXP adds XP, emits one notification per level crossed, and
// re-evaluates achievements after any level-up.
func (e *Engine) awardXP(amount int, quiz *achievements.QuizScore) {
	levels := e.progress.AwardXP(amount)
	now := e.now()
	for _, lvl := range levels {
		e.sink.Push(
			fmt.Sprintf("LEVEL_%d", lvl),
			fmt.Sprintf("Đạt cấp độ %d!", lvl),
			"Tiếp tục phát huy!",
			now,
		)
	}
	if len(levels) > 0 {
		e.unlock(achievements.Evaluate(e.progress.Progress(), e.stats.Stats(), quiz))
	}
}

// unlock appends achievements to the stats set and broadcasts each one
// that was not already unlocked.
func (e *Engine) unlock(earned []achievements.Achievement) {
	now := e.now()
	for _, a := range earned {
		if e.stats.AddAchievement(a.ID) {
			e.sink.Push(a.ID, a.Name, a.Description, now)
		}
	}
}

// appendReview logs a review event, best effort.
func (e *Engine) appendReview(ctx context.Context, itemID string, correct bool, source string, level int) {
	if e.events == nil {
		return
	}
	err := e.events.AppendReview(ctx, store.ReviewEventData{
		ItemID:   itemID,
		Source:   source,
		Correct:  correct,
		SRSLevel: level,
	})
	if err != nil {
		e.logger.Warn("failed to append review event", "item", itemID, "error", err)
	}
}

// Persistence is best effort: a failed write is logged and the session
// continues on in-memory state.

func (e *Engine) saveLedger(ctx context.Context) {
	if err := store.SaveDocument(ctx, e.docs, store.KeyItemProgress, e.ledger.Snapshot()); err != nil {
		e.logger.Warn("failed to save item progress", "error", err)
	}
}

func (e *Engine) saveProgress(ctx context.Context) {
	if err := store.SaveDocument(ctx, e.docs, store.KeyUserProgress, e.progress.Snapshot()); err != nil {
		e.logger.Warn("failed to save user progress", "error", err)
	}
}

func (e *Engine) saveStats(ctx context.Context) {
	if err := store.SaveDocument(ctx, e.docs, store.KeyUserStats, e.stats.Snapshot()); err != nil {
		e.logger.Warn("failed to save user stats", "error", err)
	}
}
