package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/curriculum"
	"github.com/nvminh/chronos/internal/llm"
)

var tocCmd = &cobra.Command{
	Use:   "toc [chapter]",
	Short: "Show the textbook table of contents with unlock state",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		generate, _ := cmd.Flags().GetBool("generate")
		force, _ := cmd.Flags().GetBool("force")
		logger := appLogger()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		chapters, err := loadChapters(ctx, st, logger)
		if err != nil || force {
			if !generate && !force {
				return err
			}
			provider, perr := llm.NewProviderFromEnv(ctx, st.Events())
			if perr != nil {
				return fmt.Errorf("LLM provider not configured: %w", perr)
			}
			fmt.Println("Generating the N3 textbook, this can take a minute...")
			svc := curriculum.NewService(provider, st.Documents(), logger)
			chapters, err = svc.Textbook(ctx, force)
			if err != nil {
				return err
			}
		}

		e := buildEngine(ctx, st, chapters, logger)
		e.DailyLoginCheck(ctx)

		if len(args) == 1 {
			num, cerr := strconv.Atoi(args[0])
			if cerr != nil {
				return fmt.Errorf("invalid chapter number %q", args[0])
			}
			ch, ok := content.FindChapter(chapters, num)
			if !ok {
				return fmt.Errorf("no chapter %d in the textbook", num)
			}
			fmt.Printf("Chapter %d: %s\n", ch.Chapter, ch.Title)
			fmt.Printf("%-28s  %-10s  %s\n", "Item", "Kind", "Status")
			fmt.Println(strings.Repeat("─", 52))
			for _, it := range ch.AllItems() {
				fmt.Printf("%-28s  %-10s  %s\n",
					truncate(it.Label(), 28), it.Kind.DisplayName(), e.ItemStatus(it.ID))
			}
			printNotifications(e)
			return nil
		}

		fmt.Printf("%-4s  %-34s  %-10s  %-9s  %s\n", "Ch", "Title", "Progress", "Mastered", "Status")
		fmt.Println(strings.Repeat("─", 72))
		for _, ch := range chapters {
			cp := e.ChapterProgressFor(ch)
			status := "unlocked"
			if !e.IsChapterUnlocked(ch) {
				status = fmt.Sprintf("locked (needs ch %v)", ch.Dependencies)
			}
			fmt.Printf("%-4d  %-34s  %8.0f%%  %4d/%-4d  %s\n",
				ch.Chapter, truncate(ch.Title, 34), cp.Percentage*100, cp.Mastered, cp.Total, status)
		}

		printNotifications(e)
		return nil
	},
}

func init() {
	tocCmd.Flags().Bool("generate", false, "Generate the textbook if none is cached")
	tocCmd.Flags().Bool("force", false, "Regenerate the textbook even if one is cached")
}
