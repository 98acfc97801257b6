package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jfmyers9/sharkfin/internal/render"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
)

var playlistLimit int

// playlistsCmd represents the playlists command
var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List and manage your playlists",
	Long: `List the playlists of the logged-in user.

Subcommands show a playlist's songs and create, rename, delete or
subscribe to playlists. Everything except 'show' needs a login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Library().Playlists(ctx)
			var list grooveshark.PlaylistList
			if err := decodeInto(raw, err, &list); err != nil {
				return err
			}
			return render.Playlists(cmd.OutOrStdout(), list.Playlists, a.cfg.OutputWidth)
		})
	},
}

var playlistShowCmd = &cobra.Command{
	Use:   "show <playlist-id>",
	Short: "Show a playlist's songs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		defer a.shutdown(ctx)

		if _, err := a.login(ctx); err != nil {
			return err
		}

		raw, err := a.client.Playlists().Songs(ctx, id, grooveshark.WithLimit(playlistLimit))
		var songs grooveshark.SongList
		if err := decodeInto(raw, err, &songs); err != nil {
			return err
		}
		return render.Songs(cmd.OutOrStdout(), songs.Songs, a.cfg.OutputWidth)
	},
}

var playlistCreateCmd = &cobra.Command{
	Use:   "create <name> [song-ids]",
	Short: "Create a playlist",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var songIDs []int64
		if len(args) == 2 {
			ids, err := parseIDs(args[1])
			if err != nil {
				return err
			}
			songIDs = ids
		}
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Playlists().Create(ctx, args[0], songIDs)
			return printResult(cmd, raw, err)
		})
	},
}

var playlistRenameCmd = &cobra.Command{
	Use:   "rename <playlist-id> <name>",
	Short: "Rename a playlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Playlists().Rename(ctx, id, args[1])
			return printResult(cmd, raw, err)
		})
	},
}

var playlistSetSongsCmd = &cobra.Command{
	Use:   "set-songs <playlist-id> <song-ids>",
	Short: "Replace a playlist's songs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		songIDs, err := parseIDs(args[1])
		if err != nil {
			return err
		}
		return withLogin(cmd, func(ctx context.Context, a *app) error {
			raw, err := a.client.Playlists().SetSongs(ctx, id, songIDs)
			return printResult(cmd, raw, err)
		})
	},
}

// playlistIDCommand builds a subcommand that takes one playlist ID
func playlistIDCommand(use, short string, call func(*grooveshark.PlaylistService, context.Context, int64) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <playlist-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withLogin(cmd, func(ctx context.Context, a *app) error {
				raw, err := call(a.client.Playlists(), ctx, id)
				return printResult(cmd, raw, err)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(playlistsCmd)
	playlistShowCmd.Flags().IntVarP(&playlistLimit, "limit", "n", 0, "Maximum number of songs (default: service default)")
	playlistsCmd.AddCommand(
		playlistShowCmd,
		playlistCreateCmd,
		playlistRenameCmd,
		playlistSetSongsCmd,
		playlistIDCommand("delete", "Delete a playlist", (*grooveshark.PlaylistService).Delete),
		playlistIDCommand("undelete", "Restore a deleted playlist", (*grooveshark.PlaylistService).Undelete),
		playlistIDCommand("subscribe", "Subscribe to a playlist", (*grooveshark.PlaylistService).Subscribe),
		playlistIDCommand("unsubscribe", "Unsubscribe from a playlist", (*grooveshark.PlaylistService).Unsubscribe),
	)
}

// withLogin runs fn with an authenticated app and logs out afterwards
func withLogin(cmd *cobra.Command, fn func(context.Context, *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer a.shutdown(ctx)

	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	return fn(ctx, a)
}

// printResult checks a raw reply for faults and prints its result
func printResult(cmd *cobra.Command, raw json.RawMessage, err error) error {
	if err != nil {
		return err
	}
	var result json.RawMessage
	if err := grooveshark.DecodeResult(raw, &result); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), result)
}
