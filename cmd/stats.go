package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvminh/chronos/internal/achievements"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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
		e.DailyLoginCheck(ctx)

		p := e.Progress()
		s := e.Stats()

		fmt.Printf("Level %d — %d/%d XP\n", p.Level, p.XP, p.XPToNextLevel)
		fmt.Printf("Streak: %d day(s)\n", s.Streak)
		if s.IsNewUser {
			fmt.Println("Placement assessment pending: chronos assess")
		}
		fmt.Printf("Due for review: %d item(s)\n", len(e.DueItems()))

		if len(s.Achievements) > 0 {
			fmt.Println("\nAchievements")
			for _, id := range s.Achievements {
				if a, ok := achievements.Lookup(id); ok {
					fmt.Printf("  %s — %s\n", a.Name, a.Description)
				} else {
					fmt.Printf("  %s\n", id)
				}
			}
		}

		perf := e.Performance()
		fmt.Println("\nAccuracy")
		fmt.Printf("  Overall:     %5.1f%%\n", perf.OverallAccuracy)
		fmt.Printf("  Vocabulary:  %5.1f%%\n", perf.SkillAccuracy.Vocabulary)
		fmt.Printf("  Grammar:     %5.1f%%\n", perf.SkillAccuracy.Grammar)
		fmt.Printf("  Kanji:       %5.1f%%\n", perf.SkillAccuracy.Kanji)

		if len(perf.WeakestItems) > 0 {
			fmt.Println("\nWeakest items")
			for _, w := range perf.WeakestItems {
				fmt.Printf("  %-14s  %d✓ %d✗  (level %d)\n",
					w.Item.Label(), w.Progress.History.Correct, w.Progress.History.Incorrect, w.Progress.SRSLevel)
			}
		}

		counts, err := st.Events().ReviewCountsBySource(ctx)
		if err == nil && len(counts) > 0 {
			fmt.Println("\nAnswers recorded")
			for _, source := range []string{"quiz", "review", "assessment", "practice"} {
				if n, ok := counts[source]; ok {
					fmt.Printf("  %-12s %d\n", source, n)
				}
			}
		}

		fmt.Println()
		fmt.Println(strings.Repeat("─", 40))
		printNotifications(e)
		return nil
	},
}
