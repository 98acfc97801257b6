package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jfmyers9/sharkfin/internal/render"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
)

var (
	artistVerified bool
	artistPopular  bool
	albumLimit     int
)

// artistCmd represents the artist command
var artistCmd = &cobra.Command{
	Use:   "artist <artist-id>",
	Short: "List an artist's albums or popular songs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			catalog := a.client.Catalog()
			if artistPopular {
				raw, err := catalog.ArtistPopularSongs(ctx, id)
				return printSongs(cmd, a, raw, err)
			}

			fetch := catalog.ArtistAlbums
			if artistVerified {
				fetch = catalog.ArtistVerifiedAlbums
			}
			raw, err := fetch(ctx, id)
			var albums grooveshark.AlbumList
			if err := decodeInto(raw, err, &albums); err != nil {
				return err
			}
			return render.Albums(cmd.OutOrStdout(), albums.Albums, a.cfg.OutputWidth)
		})
	},
}

// albumCmd represents the album command
var albumCmd = &cobra.Command{
	Use:   "album <album-id>",
	Short: "List an album's songs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Catalog().AlbumSongs(ctx, id, grooveshark.WithLimit(albumLimit))
			return printSongs(cmd, a, raw, err)
		})
	},
}

// existsCmd represents the exists command
var existsCmd = &cobra.Command{
	Use:       "exists <song|album|artist> <id>",
	Short:     "Check whether a catalog entry exists",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"song", "album", "artist"},
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			catalog := a.client.Catalog()
			var check func(context.Context, int64) (json.RawMessage, error)
			switch args[0] {
			case "song":
				check = catalog.SongExists
			case "album":
				check = catalog.AlbumExists
			case "artist":
				check = catalog.ArtistExists
			default:
				return fmt.Errorf("unknown kind %q: expected song, album or artist", args[0])
			}

			raw, err := check(ctx, id)
			var exists bool
			if err := decodeInto(raw, err, &exists); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d exists: %t\n", args[0], id, exists)
			return nil
		})
	},
}

// countryCmd represents the country command
var countryCmd = &cobra.Command{
	Use:   "country [ip]",
	Short: "Show the country descriptor for an IP address",
	Long:  `Show the country descriptor for ip, or for this machine's address when ip is omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ip string
		if len(args) == 1 {
			ip = args[0]
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Catalog().Country(ctx, ip)
			return printResult(cmd, raw, err)
		})
	},
}

// userIDCmd represents the user-id command
var userIDCmd = &cobra.Command{
	Use:   "user-id <username>",
	Short: "Resolve a username to a user ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			id, err := a.client.Auth().UserIDFromUsername(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(artistCmd, albumCmd, existsCmd, countryCmd, userIDCmd)
	artistCmd.Flags().BoolVar(&artistVerified, "verified", false, "Only list verified albums")
	artistCmd.Flags().BoolVar(&artistPopular, "popular", false, "List the artist's popular songs instead of albums")
	albumCmd.Flags().IntVarP(&albumLimit, "limit", "n", 0, "Maximum number of songs (default: service default)")
}

// withApp runs fn with an anonymous app
func withApp(cmd *cobra.Command, fn func(context.Context, *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer a.shutdown(ctx)
	return fn(ctx, a)
}
