package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/curriculum"
	"github.com/nvminh/chronos/internal/llm"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the placement assessment",
	Long:  "One-time placement assessment for new learners. Items answered correctly start at SRS level 4; the rest start from zero.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := appLogger()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		chapters, err := loadChapters(ctx, st, logger)
		if err != nil {
			return err
		}
		e := buildEngine(ctx, st, chapters, logger)

		if !e.Stats().IsNewUser {
			return fmt.Errorf("the placement assessment has already been taken")
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.Events())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := curriculum.NewService(provider, st.Documents(), logger)

		sample := assessmentChapter(chapters)
		fmt.Println("Generating the placement assessment...")
		questions, err := svc.ChapterQuiz(ctx, sample)
		if err != nil {
			return err
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		score := 0
		var results []content.QuestionResult
		for i, q := range questions {
			fmt.Printf("\n%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				fmt.Printf("   %d) %s\n", j+1, opt)
			}
			choice := askChoice(in, len(q.Options))
			if choice < 0 {
				return fmt.Errorf("assessment aborted")
			}
			correct := choice == q.AnswerIndex
			if correct {
				score++
			}
			if q.RelatedItemID != "" {
				results = append(results, content.QuestionResult{ItemID: q.RelatedItemID, Correct: correct})
			}
		}

		e.FinishAssessment(ctx, results)
		fmt.Printf("\nAssessment done: %d/%d. Your ledger is seeded; run \"chronos review\" daily.\n", score, len(questions))
		return nil
	},
}

// assessmentChapter samples the opening chapters into one synthetic
// chapter so the quiz generator can cover a spread of items.
func assessmentChapter(chapters []content.Chapter) content.Chapter {
	sample := content.Chapter{Title: "Đánh giá đầu vào N3"}
	for _, ch := range chapters {
		if len(ch.Vocabulary) > 0 {
			sample.Vocabulary = append(sample.Vocabulary, ch.Vocabulary[:min(2, len(ch.Vocabulary))]...)
		}
		if len(ch.Grammar) > 0 {
			sample.Grammar = append(sample.Grammar, ch.Grammar[0])
		}
		if len(sample.Vocabulary) >= 8 {
			break
		}
	}
	return sample
}
