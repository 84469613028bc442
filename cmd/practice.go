package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run contextual flashcard practice",
	Long:  "Low-stakes flashcard pass over due items. Correct answers earn a little XP but never move the spaced-repetition schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
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

		if e.Stats().IsNewUser {
			return fmt.Errorf("finish the placement assessment first: chronos assess")
		}
		e.DailyLoginCheck(ctx)

		items := e.DueItems()
		if len(items) == 0 {
			// Fall back to the whole first unlocked chapter.
			for _, ch := range chapters {
				if e.IsChapterUnlocked(ch) {
					items = ch.AllItems()
					break
				}
			}
		}
		if len(items) == 0 {
			fmt.Println("Nothing to practice yet.")
			return nil
		}
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		correct := 0
		for i, item := range items {
			fmt.Printf("\n[%d/%d] %s (%s)\n", i+1, len(items), item.Label(), item.Kind.DisplayName())
			fmt.Print("Press Enter to reveal... ")
			if !in.Scan() {
				break
			}
			fmt.Printf("  Meaning: %s\n", item.MeaningVI)

			fmt.Print("Got it? [y/n] ")
			if !in.Scan() {
				break
			}
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "y") {
				correct++
				e.RecordPracticeResult(ctx)
			}
		}

		fmt.Printf("\nPractice done: %d/%d. XP earned: %d.\n", correct, len(items), correct*2)
		printNotifications(e)
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntP("limit", "n", 10, "Practice at most N items")
}
