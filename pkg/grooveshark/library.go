package grooveshark

import (
	"context"
	"encoding/json"
)

// LibraryService covers the logged-in user's account, library and
// favorites. Every method needs an authenticated session.
type LibraryService struct {
	client *Client
}

// UserInfo returns the account bound to the current session.
func (l *LibraryService) UserInfo(ctx context.Context) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "getUserInfo", nil)
}

// SubscriptionDetails returns the user's subscription status.
func (l *LibraryService) SubscriptionDetails(ctx context.Context) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "getUserSubscriptionDetails", nil)
}

// Songs lists the user's library. Accepts WithLimit and WithPage.
func (l *LibraryService) Songs(ctx context.Context, opts ...ListOption) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "getUserLibrarySongs", applyListOptions(Params{}, 0, opts))
}

// AddSongs adds songs to the user's library.
func (l *LibraryService) AddSongs(ctx context.Context, songs []LibrarySong) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "addUserLibrarySongs", librarySongParams(songs))
}

// RemoveSongs removes songs from the user's library.
func (l *LibraryService) RemoveSongs(ctx context.Context, songs []LibrarySong) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "removeUserLibrarySongs", librarySongParams(songs))
}

// FavoriteSongs lists the user's favorites. Accepts WithLimit.
func (l *LibraryService) FavoriteSongs(ctx context.Context, opts ...ListOption) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "getUserFavoriteSongs", applyListOptions(Params{}, 0, opts))
}

// AddFavoriteSong marks a song as a favorite.
func (l *LibraryService) AddFavoriteSong(ctx context.Context, songID int64) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "addUserFavoriteSong", Params{"songID": songID})
}

// Playlists lists playlists the user owns. Accepts WithLimit.
func (l *LibraryService) Playlists(ctx context.Context, opts ...ListOption) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "getUserPlaylists", applyListOptions(Params{}, 0, opts))
}

// SubscribedPlaylists lists playlists the user subscribes to.
func (l *LibraryService) SubscribedPlaylists(ctx context.Context) (json.RawMessage, error) {
	return l.client.Invoke(ctx, "getUserPlaylistsSubscribed", nil)
}

// librarySongParams splits entries into the parallel arrays the service
// expects. Empty input still sends three empty arrays.
func librarySongParams(songs []LibrarySong) Params {
	songIDs := make([]int64, 0, len(songs))
	albumIDs := make([]int64, 0, len(songs))
	artistIDs := make([]int64, 0, len(songs))
	for _, s := range songs {
		songIDs = append(songIDs, s.SongID)
		albumIDs = append(albumIDs, s.AlbumID)
		artistIDs = append(artistIDs, s.ArtistID)
	}
	return Params{
		"songIDs":   songIDs,
		"albumIDs":  albumIDs,
		"artistIDs": artistIDs,
	}
}
