package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/curriculum"
	"github.com/nvminh/chronos/internal/llm"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <chapter>",
	Short: "Take the multiple-choice quiz for a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := appLogger()

		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid chapter number %q", args[0])
		}

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

		if e.Stats().IsNewUser {
			return fmt.Errorf("finish the placement assessment first: chronos assess")
		}
		e.DailyLoginCheck(ctx)

		chapter, ok := content.FindChapter(chapters, number)
		if !ok {
			return fmt.Errorf("chapter %d not found", number)
		}
		if !e.IsChapterUnlocked(chapter) {
			return fmt.Errorf("chapter %d is locked; master its prerequisites first (chronos toc)", number)
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.Events())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := curriculum.NewService(provider, st.Documents(), logger)

		fmt.Printf("Generating a quiz for chapter %d: %s...\n", chapter.Chapter, chapter.Title)
		questions, err := svc.ChapterQuiz(ctx, chapter)
		if err != nil {
			return err
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		score := 0
		var results []content.QuestionResult
		var wrong []content.WrongAnswer

		for i, q := range questions {
			fmt.Printf("\n%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				fmt.Printf("   %d) %s\n", j+1, opt)
			}

			choice := askChoice(in, len(q.Options))
			if choice < 0 {
				return fmt.Errorf("quiz aborted")
			}

			correct := choice == q.AnswerIndex
			if correct {
				score++
				fmt.Println("   ✓ Correct.")
			} else {
				fmt.Printf("   ✗ Answer: %s\n", q.Options[q.AnswerIndex])
				wrong = append(wrong, content.WrongAnswer{
					Question:      q.Question,
					UserAnswer:    q.Options[choice],
					CorrectAnswer: q.Options[q.AnswerIndex],
				})
			}
			if q.Explanation != "" {
				fmt.Printf("   %s\n", q.Explanation)
			}
			if q.RelatedItemID != "" {
				results = append(results, content.QuestionResult{ItemID: q.RelatedItemID, Correct: correct})
			}
		}

		e.RecordQuizResult(ctx, score, len(questions), results)
		fmt.Printf("\nScore: %d/%d\n", score, len(questions))

		analysis, err := svc.AnalyzeQuizResults(ctx, wrong)
		if err != nil {
			logger.Warn("quiz analysis failed", "error", err)
		} else {
			fmt.Println("\n" + analysis)
		}

		printNotifications(e)
		return nil
	},
}

// askChoice reads a 1-based option number from the learner. Returns the
// 0-based index, or -1 on EOF.
func askChoice(in *bufio.Scanner, options int) int {
	for {
		fmt.Printf("   Your answer [1-%d]: ", options)
		if !in.Scan() {
			return -1
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && n >= 1 && n <= options {
			return n - 1
		}
		fmt.Println("   Please enter a number from the list.")
	}
}
