package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the items due today",
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

		due := e.DueItems()
		if len(due) == 0 {
			fmt.Println("Nothing due. Come back tomorrow.")
			return nil
		}
		if limit > 0 && len(due) > limit {
			due = due[:limit]
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		correct := 0
		for i, item := range due {
			p := e.ItemProgress(item.ID)
			fmt.Printf("\n[%d/%d] %s  (%s, level %d)\n", i+1, len(due), item.Label(), item.Kind.DisplayName(), p.SRSLevel)
			fmt.Print("Press Enter to reveal... ")
			if !in.Scan() {
				break
			}

			fmt.Printf("  Meaning: %s\n", item.MeaningVI)
			if item.ExampleJP != "" {
				fmt.Printf("  Example: %s\n", item.ExampleJP)
			}

			fmt.Print("Did you remember it? [y/n] ")
			if !in.Scan() {
				break
			}
			got := strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "y")
			rec := e.RecordReview(ctx, item.ID, got)
			if got {
				correct++
				fmt.Printf("  → level %d, next review %s\n", rec.SRSLevel, rec.NextReview.Format("2006-01-02"))
			} else {
				fmt.Printf("  → dropped to level %d\n", rec.SRSLevel)
			}
		}

		fmt.Printf("\nSession done: %d/%d remembered.\n", correct, len(due))
		printNotifications(e)
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntP("limit", "n", 0, "Review at most N items (0 = all due)")
}
