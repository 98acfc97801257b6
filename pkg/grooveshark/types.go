package grooveshark

import (
	"encoding/json"
	"fmt"
)

// Response is the service's reply wrapper. Successful calls fill Result;
// rejected calls fill Errors.
type Response struct {
	Header map[string]any  `json:"header,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Errors []Error         `json:"errors,omitempty"`
}

// DecodeResult unwraps a raw response. It returns the first reported
// fault as *Error, ErrNoResult when there is nothing to decode, and
// otherwise unmarshals the result into v. A nil v only checks for faults.
func DecodeResult(raw json.RawMessage, v any) error {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("grooveshark: failed to parse response: %w", err)
	}
	if len(resp.Errors) > 0 {
		fault := resp.Errors[0]
		return &fault
	}
	if v == nil {
		return nil
	}
	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return ErrNoResult
	}
	if err := json.Unmarshal(resp.Result, v); err != nil {
		return fmt.Errorf("grooveshark: failed to parse result: %w", err)
	}
	return nil
}

// Song is a catalog track as returned by song, album and playlist lookups.
type Song struct {
	SongID       int64  `json:"SongID"`
	SongName     string `json:"SongName"`
	ArtistID     int64  `json:"ArtistID"`
	ArtistName   string `json:"ArtistName"`
	AlbumID      int64  `json:"AlbumID"`
	AlbumName    string `json:"AlbumName"`
	CoverArtFile string `json:"CoverArtFilename,omitempty"`
	IsLowBitrate bool   `json:"IsLowBitrateAvailable,omitempty"`
	IsVerified   bool   `json:"IsVerified,omitempty"`
	Popularity   int64  `json:"Popularity,omitempty"`
}

// Album is a catalog album.
type Album struct {
	AlbumID      int64  `json:"AlbumID"`
	AlbumName    string `json:"AlbumName"`
	ArtistID     int64  `json:"ArtistID"`
	ArtistName   string `json:"ArtistName"`
	CoverArtFile string `json:"CoverArtFilename,omitempty"`
	IsVerified   bool   `json:"IsVerified,omitempty"`
}

// Artist is a catalog artist.
type Artist struct {
	ArtistID   int64  `json:"ArtistID"`
	ArtistName string `json:"ArtistName"`
	IsVerified bool   `json:"IsVerified,omitempty"`
}

// Playlist is a user playlist summary.
type Playlist struct {
	PlaylistID   int64  `json:"PlaylistID"`
	PlaylistName string `json:"PlaylistName"`
	TSAdded      string `json:"TSAdded,omitempty"`
	UserID       int64  `json:"UserID,omitempty"`
}

// User is the account bound to a session by authenticate.
type User struct {
	UserID     int64  `json:"UserID"`
	Email      string `json:"Email,omitempty"`
	FName      string `json:"FName,omitempty"`
	LName      string `json:"LName,omitempty"`
	IsPlus     bool   `json:"IsPlus,omitempty"`
	IsAnywhere bool   `json:"IsAnywhere,omitempty"`
	IsPremium  bool   `json:"IsPremium,omitempty"`
	SessionID  string `json:"sessionID,omitempty"`
}

// Session is the reply to startSession.
type Session struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionID"`
}

// SongList is the result shape of song listings.
type SongList struct {
	Songs []Song `json:"songs"`
}

// AlbumList is the result shape of album listings.
type AlbumList struct {
	Albums []Album `json:"albums"`
}

// ArtistList is the result shape of artist listings.
type ArtistList struct {
	Artists []Artist `json:"artists"`
}

// PlaylistList is the result shape of playlist listings.
type PlaylistList struct {
	Playlists []Playlist `json:"playlists"`
}

// LibrarySong identifies one library entry. The service takes songs,
// albums and artists as parallel arrays, one element per entry.
type LibrarySong struct {
	SongID   int64
	AlbumID  int64
	ArtistID int64
}
