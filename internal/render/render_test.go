package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/mattn/go-runewidth"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very lo...",
		},
		{
			name:     "handle wide characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate wide characters",
			input:    "日本語テキスト",
			width:    10,
			expected: "日本語... ", // 6 columns + ellipsis, padded to 10
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "minimum width for truncation",
			input:    "Hello",
			width:    3,
			expected: "...",
		},
		{
			name:     "width smaller than ellipsis",
			input:    "Hello",
			width:    2,
			expected: "..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PadToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("PadToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			// Verify the result has the expected display width (if width > 0)
			if tt.width > 0 {
				resultWidth := runewidth.StringWidth(result)
				if resultWidth != tt.width {
					t.Errorf("PadToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, resultWidth, tt.width)
				}
			}
		})
	}
}

func TestTableWrite(t *testing.T) {
	table := &Table{
		Header: []string{"ID", "NAME"},
		Rows: [][]string{
			{"1", "Short"},
			{"1234", "A much longer name"},
		},
	}

	var buf bytes.Buffer
	if err := table.Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ID    NAME\n" +
		"1     Short\n" +
		"1234  A much longer name\n"
	if buf.String() != want {
		t.Errorf("unexpected table\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestTableWrite_MaxWidth(t *testing.T) {
	table := &Table{
		Header:   []string{"NAME", "ARTIST"},
		Rows:     [][]string{{"An extremely long song title", "Band"}},
		MaxWidth: 10,
	}

	var buf bytes.Buffer
	if err := table.Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "An extr...  Band" {
		t.Errorf("expected truncated first column, got %q", lines[1])
	}
}

func TestSongs(t *testing.T) {
	songs := []grooveshark.Song{
		{SongID: 7, SongName: "Intro", ArtistName: "Band", AlbumName: "LP"},
	}

	var buf bytes.Buffer
	if err := Songs(&buf, songs, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ID  TITLE  ARTIST  ALBUM\n" +
		"7   Intro  Band    LP\n"
	if buf.String() != want {
		t.Errorf("unexpected output\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestPlaylists(t *testing.T) {
	playlists := []grooveshark.Playlist{
		{PlaylistID: 12, PlaylistName: "Mix", TSAdded: "2014-01-01"},
	}

	var buf bytes.Buffer
	if err := Playlists(&buf, playlists, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "12  Mix       2014-01-01") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
