package cmd

import (
	"time"

	"github.com/jfmyers9/sharkfin/internal/tui"
	"github.com/spf13/cobra"
)

var (
	topRefresh time.Duration
	topLimit   int
)

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Live dashboard of the popularity charts",
	Long: `Launch a terminal dashboard showing today's and this month's most
played songs side by side, with the most recent journaled calls below.

The charts refetch on the refresh interval. Press 'r' to refetch now
and 'q' to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Console output would draw over the dashboard
		if logFile == "" {
			logLevel = "disabled"
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		defer a.shutdown(ctx)

		dashboard := tui.NewWithConfig(a.client.Catalog(), tui.Config{
			RefreshRate: topRefresh,
			Limit:       topLimit,
		})
		if a.journal != nil {
			dashboard.SetCallSource(a.journal.Recent)
		}

		a.logger.Debug().Dur("refresh", topRefresh).Int("limit", topLimit).Msg("Starting dashboard")
		return dashboard.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
	defaults := tui.DefaultConfig()
	topCmd.Flags().DurationVar(&topRefresh, "refresh", defaults.RefreshRate, "How often to refetch the charts")
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", defaults.Limit, "Songs per chart")
}
