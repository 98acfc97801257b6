package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfmyers9/sharkfin/internal/render"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
)

var (
	libraryLimit int
	libraryPage  int
)

// libraryCmd represents the library command
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Show and edit your song library",
	Long: `List the songs in the logged-in user's library.

Library entries are written as song:album:artist ID triples, for example
'sharkfin library add 100:20:3'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().Songs(ctx,
				grooveshark.WithLimit(libraryLimit), grooveshark.WithPage(libraryPage))
			return printSongs(cmd, a, raw, err)
		})
	},
}

var libraryFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite songs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().FavoriteSongs(ctx, grooveshark.WithLimit(libraryLimit))
			return printSongs(cmd, a, raw, err)
		})
	},
}

var libraryFavoriteCmd = &cobra.Command{
	Use:   "favorite <song-id>",
	Short: "Mark a song as a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().AddFavoriteSong(ctx, id)
			return printResult(cmd, raw, err)
		})
	},
}

var libraryAddCmd = &cobra.Command{
	Use:   "add <song:album:artist>...",
	Short: "Add songs to your library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		songs, err := parseLibrarySongs(args)
		if err != nil {
			return err
		}
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().AddSongs(ctx, songs)
			return printResult(cmd, raw, err)
		})
	},
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove <song:album:artist>...",
	Short: "Remove songs from your library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		songs, err := parseLibrarySongs(args)
		if err != nil {
			return err
		}
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().RemoveSongs(ctx, songs)
			return printResult(cmd, raw, err)
		})
	},
}

var librarySubscribedCmd = &cobra.Command{
	Use:   "subscribed",
	Short: "List playlists you subscribe to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().SubscribedPlaylists(ctx)
			var list grooveshark.PlaylistList
			if err := decodeInto(raw, err, &list); err != nil {
				return err
			}
			return render.Playlists(cmd.OutOrStdout(), list.Playlists, a.cfg.OutputWidth)
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account and its subscription",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().UserInfo(ctx)
			if err := printResult(cmd, raw, err); err != nil {
				return err
			}
			raw, err = a.client.Library().SubscriptionDetails(ctx)
			return printResult(cmd, raw, err)
		})
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(whoamiCmd)
	libraryCmd.PersistentFlags().IntVarP(&libraryLimit, "limit", "n", 0, "Maximum number of songs (default: service default)")
	libraryCmd.Flags().IntVar(&libraryPage, "page", 0, "Page of results to fetch")
	libraryCmd.AddCommand(
		libraryFavoritesCmd,
		libraryFavoriteCmd,
		libraryAddCmd,
		libraryRemoveCmd,
		librarySubscribedCmd,
	)
}

// printSongs decodes a song listing and renders it
func printSongs(cmd *cobra.Command, a *app, raw []byte, err error) error {
	var songs grooveshark.SongList
	if err := decodeInto(raw, err, &songs); err != nil {
		return err
	}
	return render.Songs(cmd.OutOrStdout(), songs.Songs, a.cfg.OutputWidth)
}

// parseLibrarySongs parses song:album:artist triples
func parseLibrarySongs(args []string) ([]grooveshark.LibrarySong, error) {
	songs := make([]grooveshark.LibrarySong, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%q is not a song:album:artist triple", arg)
		}
		var ids [3]int64
		for i, part := range parts {
			id, err := parseID(part)
			if err != nil {
				return nil, fmt.Errorf("invalid entry %q: %w", arg, err)
			}
			ids[i] = id
		}
		songs = append(songs, grooveshark.LibrarySong{SongID: ids[0], AlbumID: ids[1], ArtistID: ids[2]})
	}
	return songs, nil
}
