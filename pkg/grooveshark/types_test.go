package grooveshark

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeResult(t *testing.T) {
	t.Run("result", func(t *testing.T) {
		raw := json.RawMessage(`{"header":{"hostname":"api1"},"result":{"songs":[{"SongID":1,"SongName":"Intro","ArtistName":"Band","AlbumName":"LP"}]}}`)
		var list SongList
		if err := DecodeResult(raw, &list); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Songs) != 1 {
			t.Fatalf("expected 1 song, got %d", len(list.Songs))
		}
		if list.Songs[0].SongName != "Intro" || list.Songs[0].ArtistName != "Band" {
			t.Errorf("unexpected song: %+v", list.Songs[0])
		}
	})

	t.Run("fault", func(t *testing.T) {
		raw := json.RawMessage(`{"errors":[{"code":100,"message":"Session required"},{"code":2,"message":"other"}]}`)
		err := DecodeResult(raw, &SongList{})

		var fault *Error
		if !errors.As(err, &fault) {
			t.Fatalf("expected *Error, got %T: %v", err, err)
		}
		if fault.Code != 100 || fault.Message != "Session required" {
			t.Errorf("expected first fault, got %+v", fault)
		}
		if !errors.Is(err, &Error{Code: 100}) {
			t.Error("expected errors.Is to match on code")
		}
		if errors.Is(err, &Error{Code: 2}) {
			t.Error("expected errors.Is not to match a different code")
		}
	})

	t.Run("fault check only", func(t *testing.T) {
		if err := DecodeResult(json.RawMessage(`{"result":true}`), nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing result", func(t *testing.T) {
		err := DecodeResult(json.RawMessage(`{"header":{}}`), &SongList{})
		if !errors.Is(err, ErrNoResult) {
			t.Errorf("expected ErrNoResult, got %v", err)
		}
	})

	t.Run("null result", func(t *testing.T) {
		err := DecodeResult(json.RawMessage(`{"result":null}`), &SongList{})
		if !errors.Is(err, ErrNoResult) {
			t.Errorf("expected ErrNoResult, got %v", err)
		}
	})

	t.Run("mismatched result", func(t *testing.T) {
		err := DecodeResult(json.RawMessage(`{"result":"nope"}`), &SongList{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("not an object", func(t *testing.T) {
		if err := DecodeResult(json.RawMessage(`[1,2]`), nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
