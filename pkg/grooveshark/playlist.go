package grooveshark

import (
	"context"
	"encoding/json"
)

// PlaylistService provides playlist operations. Reads work on any public
// playlist; changes need an authenticated session that owns the playlist.
type PlaylistService struct {
	client *Client
}

// Info returns playlist metadata without its songs.
func (p *PlaylistService) Info(ctx context.Context, playlistID int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "getPlaylistInfo", Params{"playlistID": playlistID})
}

// Get returns a playlist with its songs. The limit defaults to
// DefaultLimit; override it with WithLimit.
func (p *PlaylistService) Get(ctx context.Context, playlistID int64, opts ...ListOption) (json.RawMessage, error) {
	params := applyListOptions(Params{"playlistID": playlistID}, DefaultLimit, opts)
	return p.client.Invoke(ctx, "getPlaylist", params)
}

// Songs returns a playlist's songs. Accepts WithLimit.
func (p *PlaylistService) Songs(ctx context.Context, playlistID int64, opts ...ListOption) (json.RawMessage, error) {
	params := applyListOptions(Params{"playlistID": playlistID}, 0, opts)
	return p.client.Invoke(ctx, "getPlaylistSongs", params)
}

// Create makes a new playlist holding songIDs in order.
func (p *PlaylistService) Create(ctx context.Context, name string, songIDs []int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "createPlaylist", Params{
		"name":    name,
		"songIDs": idList(songIDs),
	})
}

// Rename changes a playlist's name.
func (p *PlaylistService) Rename(ctx context.Context, playlistID int64, name string) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "renamePlaylist", Params{
		"playlistID": playlistID,
		"name":       name,
	})
}

// SetSongs replaces a playlist's songs with songIDs.
func (p *PlaylistService) SetSongs(ctx context.Context, playlistID int64, songIDs []int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "setPlaylistSongs", Params{
		"playlistID": playlistID,
		"songIDs":    idList(songIDs),
	})
}

// Delete deletes a playlist. It can be restored with Undelete.
func (p *PlaylistService) Delete(ctx context.Context, playlistID int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "deletePlaylist", Params{"playlistID": playlistID})
}

// Undelete restores a deleted playlist.
func (p *PlaylistService) Undelete(ctx context.Context, playlistID int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "undeletePlaylist", Params{"playlistID": playlistID})
}

// Subscribe subscribes the user to a playlist.
func (p *PlaylistService) Subscribe(ctx context.Context, playlistID int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "subscribePlaylist", Params{"playlistID": playlistID})
}

// Unsubscribe removes the user's subscription to a playlist.
func (p *PlaylistService) Unsubscribe(ctx context.Context, playlistID int64) (json.RawMessage, error) {
	return p.client.Invoke(ctx, "unsubscribePlaylist", Params{"playlistID": playlistID})
}

// idList keeps a nil slice from being sent as null.
func idList(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
