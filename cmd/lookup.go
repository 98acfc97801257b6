package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jfmyers9/sharkfin/internal/render"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	lookupSongs   string
	lookupAlbums  string
	lookupArtists string
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up songs, albums and artists by ID",
	Long: `Look up catalog entries by ID and print them as tables.

IDs are comma separated. The three lookups run concurrently.

Examples:
  sharkfin lookup --songs 1,2,3
  sharkfin lookup --albums 10 --artists 7,8`,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupSongs, "songs", "", "Comma-separated song IDs")
	lookupCmd.Flags().StringVar(&lookupAlbums, "albums", "", "Comma-separated album IDs")
	lookupCmd.Flags().StringVar(&lookupArtists, "artists", "", "Comma-separated artist IDs")
}

func runLookup(cmd *cobra.Command, args []string) error {
	songIDs, err := parseIDs(lookupSongs)
	if err != nil {
		return fmt.Errorf("invalid --songs: %w", err)
	}
	albumIDs, err := parseIDs(lookupAlbums)
	if err != nil {
		return fmt.Errorf("invalid --albums: %w", err)
	}
	artistIDs, err := parseIDs(lookupArtists)
	if err != nil {
		return fmt.Errorf("invalid --artists: %w", err)
	}
	if len(songIDs)+len(albumIDs)+len(artistIDs) == 0 {
		return fmt.Errorf("nothing to look up: pass --songs, --albums or --artists")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.shutdown(cmd.Context())

	var (
		songs   grooveshark.SongList
		albums  grooveshark.AlbumList
		artists grooveshark.ArtistList
	)

	catalog := a.client.Catalog()
	g, ctx := errgroup.WithContext(cmd.Context())
	if len(songIDs) > 0 {
		g.Go(func() error {
			raw, err := catalog.SongsInfo(ctx, songIDs)
			return decodeInto(raw, err, &songs)
		})
	}
	if len(albumIDs) > 0 {
		g.Go(func() error {
			raw, err := catalog.AlbumsInfo(ctx, albumIDs)
			return decodeInto(raw, err, &albums)
		})
	}
	if len(artistIDs) > 0 {
		g.Go(func() error {
			raw, err := catalog.ArtistsInfo(ctx, artistIDs)
			return decodeInto(raw, err, &artists)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := a.cfg.OutputWidth
	if len(songIDs) > 0 {
		if err := render.Songs(out, songs.Songs, width); err != nil {
			return err
		}
	}
	if len(albumIDs) > 0 {
		if err := render.Albums(out, albums.Albums, width); err != nil {
			return err
		}
	}
	if len(artistIDs) > 0 {
		if err := render.Artists(out, artists.Artists, width); err != nil {
			return err
		}
	}
	return nil
}

// decodeInto combines a wrapper's return values with DecodeResult
func decodeInto(raw []byte, err error, v any) error {
	if err != nil {
		return err
	}
	return grooveshark.DecodeResult(raw, v)
}

// parseIDs parses a comma-separated list of positive IDs
func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an ID", field)
		}
		if id <= 0 {
			return nil, fmt.Errorf("%q is not a positive ID", field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseID parses a single positional ID argument
func parseID(s string) (int64, error) {
	ids, err := parseIDs(s)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("expected one ID, got %q", s)
	}
	return ids[0], nil
}
