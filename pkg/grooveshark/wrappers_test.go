package grooveshark

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

// TestWrappers checks that each high-level method sends the right remote
// name and parameter keys.
func TestWrappers(t *testing.T) {
	songs := []LibrarySong{
		{SongID: 1, AlbumID: 10, ArtistID: 100},
		{SongID: 2, AlbumID: 20, ArtistID: 200},
	}

	tests := []struct {
		name       string
		call       func(ctx context.Context, c *Client) error
		wantMethod string
		wantParams string
	}{
		// Service
		{"ping", func(ctx context.Context, c *Client) error { _, err := c.Ping(ctx); return err },
			"pingService", `{}`},
		{"service description", func(ctx context.Context, c *Client) error { _, err := c.ServiceDescription(ctx); return err },
			"getServiceDescription", `{}`},

		// Library
		{"user info", func(ctx context.Context, c *Client) error { _, err := c.Library().UserInfo(ctx); return err },
			"getUserInfo", `{}`},
		{"subscription details", func(ctx context.Context, c *Client) error { _, err := c.Library().SubscriptionDetails(ctx); return err },
			"getUserSubscriptionDetails", `{}`},
		{"library songs", func(ctx context.Context, c *Client) error { _, err := c.Library().Songs(ctx); return err },
			"getUserLibrarySongs", `{}`},
		{"library songs paged", func(ctx context.Context, c *Client) error {
			_, err := c.Library().Songs(ctx, WithLimit(50), WithPage(2))
			return err
		}, "getUserLibrarySongs", `{"limit":50,"page":2}`},
		{"add library songs", func(ctx context.Context, c *Client) error { _, err := c.Library().AddSongs(ctx, songs); return err },
			"addUserLibrarySongs", `{"albumIDs":[10,20],"artistIDs":[100,200],"songIDs":[1,2]}`},
		{"remove library songs", func(ctx context.Context, c *Client) error { _, err := c.Library().RemoveSongs(ctx, songs[:1]); return err },
			"removeUserLibrarySongs", `{"albumIDs":[10],"artistIDs":[100],"songIDs":[1]}`},
		{"remove nothing", func(ctx context.Context, c *Client) error { _, err := c.Library().RemoveSongs(ctx, nil); return err },
			"removeUserLibrarySongs", `{"albumIDs":[],"artistIDs":[],"songIDs":[]}`},
		{"favorite songs", func(ctx context.Context, c *Client) error { _, err := c.Library().FavoriteSongs(ctx, WithLimit(5)); return err },
			"getUserFavoriteSongs", `{"limit":5}`},
		{"add favorite", func(ctx context.Context, c *Client) error { _, err := c.Library().AddFavoriteSong(ctx, 77); return err },
			"addUserFavoriteSong", `{"songID":77}`},
		{"user playlists", func(ctx context.Context, c *Client) error { _, err := c.Library().Playlists(ctx); return err },
			"getUserPlaylists", `{}`},
		{"subscribed playlists", func(ctx context.Context, c *Client) error { _, err := c.Library().SubscribedPlaylists(ctx); return err },
			"getUserPlaylistsSubscribed", `{}`},

		// Playlists
		{"playlist info", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Info(ctx, 8); return err },
			"getPlaylistInfo", `{"playlistID":8}`},
		{"playlist default limit", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Get(ctx, 8); return err },
			"getPlaylist", `{"limit":10,"playlistID":8}`},
		{"playlist custom limit", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Get(ctx, 8, WithLimit(3)); return err },
			"getPlaylist", `{"limit":3,"playlistID":8}`},
		{"playlist songs", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Songs(ctx, 8); return err },
			"getPlaylistSongs", `{"playlistID":8}`},
		{"create playlist", func(ctx context.Context, c *Client) error {
			_, err := c.Playlists().Create(ctx, "Road Trip", []int64{4, 5})
			return err
		}, "createPlaylist", `{"name":"Road Trip","songIDs":[4,5]}`},
		{"create empty playlist", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Create(ctx, "Empty", nil); return err },
			"createPlaylist", `{"name":"Empty","songIDs":[]}`},
		{"rename playlist", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Rename(ctx, 8, "New"); return err },
			"renamePlaylist", `{"name":"New","playlistID":8}`},
		{"set playlist songs", func(ctx context.Context, c *Client) error {
			_, err := c.Playlists().SetSongs(ctx, 8, []int64{3, 2, 1})
			return err
		}, "setPlaylistSongs", `{"playlistID":8,"songIDs":[3,2,1]}`},
		{"delete playlist", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Delete(ctx, 8); return err },
			"deletePlaylist", `{"playlistID":8}`},
		{"undelete playlist", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Undelete(ctx, 8); return err },
			"undeletePlaylist", `{"playlistID":8}`},
		{"subscribe playlist", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Subscribe(ctx, 8); return err },
			"subscribePlaylist", `{"playlistID":8}`},
		{"unsubscribe playlist", func(ctx context.Context, c *Client) error { _, err := c.Playlists().Unsubscribe(ctx, 8); return err },
			"unsubscribePlaylist", `{"playlistID":8}`},

		// Catalog
		{"albums info", func(ctx context.Context, c *Client) error { _, err := c.Catalog().AlbumsInfo(ctx, []int64{101}); return err },
			"getAlbumsInfo", `{"albumIDs":[101]}`},
		{"album songs", func(ctx context.Context, c *Client) error { _, err := c.Catalog().AlbumSongs(ctx, 101, WithLimit(20)); return err },
			"getAlbumSongs", `{"albumID":101,"limit":20}`},
		{"artists info", func(ctx context.Context, c *Client) error { _, err := c.Catalog().ArtistsInfo(ctx, []int64{1, 2}); return err },
			"getArtistsInfo", `{"artistIDs":[1,2]}`},
		{"songs info", func(ctx context.Context, c *Client) error { _, err := c.Catalog().SongsInfo(ctx, []int64{9}); return err },
			"getSongsInfo", `{"songIDs":[9]}`},
		{"album exists", func(ctx context.Context, c *Client) error { _, err := c.Catalog().AlbumExists(ctx, 101); return err },
			"getDoesAlbumExist", `{"albumID":101}`},
		{"song exists", func(ctx context.Context, c *Client) error { _, err := c.Catalog().SongExists(ctx, 9); return err },
			"getDoesSongExist", `{"songID":9}`},
		{"artist exists", func(ctx context.Context, c *Client) error { _, err := c.Catalog().ArtistExists(ctx, 1); return err },
			"getDoesArtistExist", `{"artistID":1}`},
		{"artist albums", func(ctx context.Context, c *Client) error { _, err := c.Catalog().ArtistAlbums(ctx, 1); return err },
			"getArtistAlbums", `{"artistID":1}`},
		{"artist verified albums", func(ctx context.Context, c *Client) error { _, err := c.Catalog().ArtistVerifiedAlbums(ctx, 1); return err },
			"getArtistVerifiedAlbums", `{"artistID":1}`},
		{"artist popular songs", func(ctx context.Context, c *Client) error { _, err := c.Catalog().ArtistPopularSongs(ctx, 1); return err },
			"getArtistPopularSongs", `{"artistID":1}`},
		{"popular today default", func(ctx context.Context, c *Client) error { _, err := c.Catalog().PopularSongsToday(ctx); return err },
			"getPopularSongsToday", `{"limit":10}`},
		{"popular today limit", func(ctx context.Context, c *Client) error { _, err := c.Catalog().PopularSongsToday(ctx, WithLimit(25)); return err },
			"getPopularSongsToday", `{"limit":25}`},
		{"popular month default", func(ctx context.Context, c *Client) error { _, err := c.Catalog().PopularSongsMonth(ctx); return err },
			"getPopularSongsMonth", `{"limit":10}`},
		{"popular month ignores bad limit", func(ctx context.Context, c *Client) error {
			_, err := c.Catalog().PopularSongsMonth(ctx, WithLimit(-1))
			return err
		}, "getPopularSongsMonth", `{"limit":10}`},
		{"country of caller", func(ctx context.Context, c *Client) error { _, err := c.Catalog().Country(ctx, ""); return err },
			"getCountry", `{}`},
		{"country of ip", func(ctx context.Context, c *Client) error { _, err := c.Catalog().Country(ctx, "8.8.8.8"); return err },
			"getCountry", `{"ip":"8.8.8.8"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, `{"result":{}}`)
			client := newTestClient(t, server.URL)

			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var body struct {
				Method     string          `json:"method"`
				Parameters json.RawMessage `json:"parameters"`
			}
			if err := json.Unmarshal(server.last(t).Body, &body); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if body.Method != tt.wantMethod {
				t.Errorf("expected method %s, got %s", tt.wantMethod, body.Method)
			}
			if string(body.Parameters) != tt.wantParams {
				t.Errorf("expected parameters %s, got %s", tt.wantParams, body.Parameters)
			}
		})
	}
}
