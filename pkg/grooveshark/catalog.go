package grooveshark

import (
	"context"
	"encoding/json"
)

// CatalogService provides song, album and artist lookups. None of these
// need a logged-in user.
type CatalogService struct {
	client *Client
}

// AlbumsInfo returns metadata for each album ID.
func (s *CatalogService) AlbumsInfo(ctx context.Context, albumIDs []int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getAlbumsInfo", Params{"albumIDs": idList(albumIDs)})
}

// AlbumSongs returns an album's songs. Accepts WithLimit.
func (s *CatalogService) AlbumSongs(ctx context.Context, albumID int64, opts ...ListOption) (json.RawMessage, error) {
	params := applyListOptions(Params{"albumID": albumID}, 0, opts)
	return s.client.Invoke(ctx, "getAlbumSongs", params)
}

// ArtistsInfo returns metadata for each artist ID.
func (s *CatalogService) ArtistsInfo(ctx context.Context, artistIDs []int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getArtistsInfo", Params{"artistIDs": idList(artistIDs)})
}

// SongsInfo returns metadata for each song ID.
func (s *CatalogService) SongsInfo(ctx context.Context, songIDs []int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getSongsInfo", Params{"songIDs": idList(songIDs)})
}

// AlbumExists reports through the service whether an album ID is known.
func (s *CatalogService) AlbumExists(ctx context.Context, albumID int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getDoesAlbumExist", Params{"albumID": albumID})
}

// SongExists reports through the service whether a song ID is known.
func (s *CatalogService) SongExists(ctx context.Context, songID int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getDoesSongExist", Params{"songID": songID})
}

// ArtistExists reports through the service whether an artist ID is known.
func (s *CatalogService) ArtistExists(ctx context.Context, artistID int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getDoesArtistExist", Params{"artistID": artistID})
}

// ArtistAlbums returns all albums credited to an artist.
func (s *CatalogService) ArtistAlbums(ctx context.Context, artistID int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getArtistAlbums", Params{"artistID": artistID})
}

// ArtistVerifiedAlbums returns only an artist's verified albums.
func (s *CatalogService) ArtistVerifiedAlbums(ctx context.Context, artistID int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getArtistVerifiedAlbums", Params{"artistID": artistID})
}

// ArtistPopularSongs returns an artist's most played songs.
func (s *CatalogService) ArtistPopularSongs(ctx context.Context, artistID int64) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getArtistPopularSongs", Params{"artistID": artistID})
}

// PopularSongsToday returns today's most played songs. The limit defaults
// to DefaultLimit; override it with WithLimit.
func (s *CatalogService) PopularSongsToday(ctx context.Context, opts ...ListOption) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getPopularSongsToday", applyListOptions(Params{}, DefaultLimit, opts))
}

// PopularSongsMonth returns this month's most played songs. The limit
// defaults to DefaultLimit; override it with WithLimit.
func (s *CatalogService) PopularSongsMonth(ctx context.Context, opts ...ListOption) (json.RawMessage, error) {
	return s.client.Invoke(ctx, "getPopularSongsMonth", applyListOptions(Params{}, DefaultLimit, opts))
}

// Country returns the country descriptor for ip, or for the caller's
// address when ip is empty.
func (s *CatalogService) Country(ctx context.Context, ip string) (json.RawMessage, error) {
	params := Params{}
	if ip != "" {
		params["ip"] = ip
	}
	return s.client.Invoke(ctx, "getCountry", params)
}
