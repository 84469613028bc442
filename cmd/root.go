package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nvminh/chronos/internal/content"
	"github.com/nvminh/chronos/internal/engine"
	"github.com/nvminh/chronos/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "AI Japanese tutor for JLPT N3",
	Long:  "Chronos — AI-native tutor that takes a Vietnamese learner through the JLPT N3 curriculum with spaced repetition.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env loading is best effort; a missing file is fine.
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHRONOS_DB env var)")

	rootCmd.AddCommand(tocCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CHRONOS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the resolved database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// appLogger logs warnings and up to stderr; informational noise stays
// out of the command output.
func appLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// loadChapters returns the cached curriculum. Commands that cannot
// generate content tell the user to run the generator first.
func loadChapters(ctx context.Context, st *store.Store, logger *slog.Logger) ([]content.Chapter, error) {
	raw, err := st.Documents().Load(ctx, store.KeyCurriculum)
	if err != nil {
		return nil, fmt.Errorf("load curriculum: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("no curriculum yet; run \"chronos toc --generate\" first")
	}
	chapters := store.LoadDocument(ctx, st.Documents(), store.KeyCurriculum, []content.Chapter(nil), logger)
	if len(chapters) == 0 {
		return nil, fmt.Errorf("stored curriculum is unreadable; run \"chronos toc --generate --force\"")
	}
	return chapters, nil
}

// buildEngine loads the progress engine over the given curriculum.
func buildEngine(ctx context.Context, st *store.Store, chapters []content.Chapter, logger *slog.Logger) *engine.Engine {
	return engine.Load(ctx, engine.Config{
		Documents: st.Documents(),
		Events:    st.Events(),
		Chapters:  chapters,
		Logger:    logger,
	})
}

// printNotifications flushes active notifications to stdout.
func printNotifications(e *engine.Engine) {
	for _, n := range e.Notifications() {
		fmt.Printf("\n★ %s — %s\n", n.Name, n.Description)
	}
}
