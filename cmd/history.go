package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jfmyers9/sharkfin/internal/config"
	"github.com/jfmyers9/sharkfin/internal/journal"
	"github.com/jfmyers9/sharkfin/internal/render"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyMaxAge time.Duration
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently journaled service calls",
	Long: `Show the most recent service calls recorded in the local journal.

The journal stores the method, status, outcome and timing of each call.
It never stores parameters, credentials or results.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := loadJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		ctx := cmd.Context()
		entries, err := j.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}
		total, err := j.Count(ctx, false)
		if err != nil {
			return err
		}
		failed, err := j.Count(ctx, true)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := writeHistory(out, entries); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d calls recorded, %d failed\n", total, failed)
		return nil
	},
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete old journal entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := loadJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		deleted, err := j.Cleanup(cmd.Context(), historyMaxAge)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries older than %s\n", deleted, historyMaxAge)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyCleanCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show (0 for all)")
	historyCleanCmd.Flags().DurationVar(&historyMaxAge, "older-than", 30*24*time.Hour, "Delete entries older than this")
}

// loadJournal opens the configured journal without needing credentials
func loadJournal() (*journal.Journal, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.JournalPath == "" {
		return nil, fmt.Errorf("journal is disabled (journal_path is empty)")
	}
	return openJournal(cfg.JournalPath)
}

// writeHistory renders journal entries as a table
func writeHistory(w io.Writer, entries []journal.Entry) error {
	t := &render.Table{Header: []string{"TIME", "RUN", "METHOD", "STATUS", "OUTCOME", "DURATION", "ERROR"}}
	for _, e := range entries {
		status := "-"
		if e.StatusCode != 0 {
			status = fmt.Sprint(e.StatusCode)
		}
		runID := e.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		t.Rows = append(t.Rows, []string{
			e.Timestamp.Format("2006-01-02 15:04:05"),
			runID,
			e.Method,
			status,
			string(e.Outcome),
			e.Duration.String(),
			e.Error,
		})
	}
	return t.Write(w)
}
