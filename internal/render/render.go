package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// PadToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func PadToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	switch {
	case currentWidth > width:
		if width <= runewidth.StringWidth(ellipsis) {
			return runewidth.Truncate(ellipsis, width, "")
		}
		// Truncate may land one column short before a wide rune
		return runewidth.FillRight(runewidth.Truncate(text, width, ellipsis), width)
	case currentWidth < width:
		return text + strings.Repeat(" ", width-currentWidth)
	default:
		return text
	}
}

// Table writes rows as aligned columns separated by two spaces.
type Table struct {
	Header []string
	Rows   [][]string

	// MaxWidth caps every column's display width; 0 means no cap
	MaxWidth int
}

// Write renders the table to w
func (t *Table) Write(w io.Writer) error {
	widths := make([]int, len(t.Header))
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	if t.MaxWidth > 0 {
		for i := range widths {
			if widths[i] > t.MaxWidth {
				widths[i] = t.MaxWidth
			}
		}
	}

	writeRow := func(row []string) error {
		cells := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if i == len(widths)-1 && runewidth.StringWidth(cell) <= widths[i] {
				// No trailing padding on the last column
				cells[i] = cell
				continue
			}
			cells[i] = PadToWidth(cell, widths[i])
		}
		_, err := fmt.Fprintln(w, strings.Join(cells, "  "))
		return err
	}

	if len(t.Header) > 0 {
		if err := writeRow(t.Header); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// Songs renders songs as an ID/title/artist/album table
func Songs(w io.Writer, songs []grooveshark.Song, maxWidth int) error {
	t := &Table{Header: []string{"ID", "TITLE", "ARTIST", "ALBUM"}, MaxWidth: maxWidth}
	for _, s := range songs {
		t.Rows = append(t.Rows, []string{fmt.Sprint(s.SongID), s.SongName, s.ArtistName, s.AlbumName})
	}
	return t.Write(w)
}

// Albums renders albums as an ID/title/artist table
func Albums(w io.Writer, albums []grooveshark.Album, maxWidth int) error {
	t := &Table{Header: []string{"ID", "ALBUM", "ARTIST"}, MaxWidth: maxWidth}
	for _, a := range albums {
		t.Rows = append(t.Rows, []string{fmt.Sprint(a.AlbumID), a.AlbumName, a.ArtistName})
	}
	return t.Write(w)
}

// Artists renders artists as an ID/name table
func Artists(w io.Writer, artists []grooveshark.Artist, maxWidth int) error {
	t := &Table{Header: []string{"ID", "ARTIST"}, MaxWidth: maxWidth}
	for _, a := range artists {
		t.Rows = append(t.Rows, []string{fmt.Sprint(a.ArtistID), a.ArtistName})
	}
	return t.Write(w)
}

// Playlists renders playlists as an ID/name/added table
func Playlists(w io.Writer, playlists []grooveshark.Playlist, maxWidth int) error {
	t := &Table{Header: []string{"ID", "PLAYLIST", "ADDED"}, MaxWidth: maxWidth}
	for _, p := range playlists {
		t.Rows = append(t.Rows, []string{fmt.Sprint(p.PlaylistID), p.PlaylistName, p.TSAdded})
	}
	return t.Write(w)
}
