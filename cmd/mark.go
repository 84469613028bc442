package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvminh/chronos/internal/srs"
)

var markCmd = &cobra.Command{
	Use:   "mark <item-id> <mastered|review>",
	Short: "Manually override an item's learning status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := appLogger()

		status, ok := srs.ParseStatus(args[1])
		if !ok {
			return fmt.Errorf("unknown status %q (use mastered or review)", args[1])
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

		itemID := args[0]
		if _, found := e.Index().Lookup(itemID); !found {
			return fmt.Errorf("item %q is not in the curriculum", itemID)
		}

		rec, applied := e.MarkItemStatus(ctx, itemID, status)
		if !applied {
			return fmt.Errorf("status %q cannot be set manually", status)
		}

		fmt.Printf("%s → %s (level %d, next review %s)\n",
			itemID, status, rec.SRSLevel, rec.NextReview.Format("2006-01-02"))
		return nil
	},
}
