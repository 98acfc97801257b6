package cmd

import (
	"github.com/jfmyers9/sharkfin/internal/render"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
)

var (
	popularMonth bool
	popularLimit int
)

// popularCmd represents the popular command
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show today's or this month's most played songs",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		defer a.shutdown(ctx)

		catalog := a.client.Catalog()
		fetch := catalog.PopularSongsToday
		if popularMonth {
			fetch = catalog.PopularSongsMonth
		}

		raw, err := fetch(ctx, grooveshark.WithLimit(popularLimit))
		var songs grooveshark.SongList
		if err := decodeInto(raw, err, &songs); err != nil {
			return err
		}
		return render.Songs(cmd.OutOrStdout(), songs.Songs, a.cfg.OutputWidth)
	},
}

func init() {
	rootCmd.AddCommand(popularCmd)
	popularCmd.Flags().BoolVar(&popularMonth, "month", false, "Show this month's chart instead of today's")
	popularCmd.Flags().IntVarP(&popularLimit, "limit", "n", grooveshark.DefaultLimit, "Number of songs to show")
}
