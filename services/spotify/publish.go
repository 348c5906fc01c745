package spotify

import (
	"context"
	"fmt"
	"log"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"

	"vibemix/blueprint"
)

// playlistDescription is attached to every published playlist.
const playlistDescription = "Generated with ❤️ by VibeMix"

// Publisher creates a playlist on the user's account. *Service is the
// production implementation.
type Publisher interface {
	PublishPlaylist(ctx context.Context, accessToken, name string, tracks []blueprint.ResolvedTrack) (*blueprint.PublishResult, error)
}

// PublishPlaylist creates a public playlist on the account behind the access
// token and fills it with the resolved tracks, preserving their order. When
// the playlist is created but the tracks cannot be added, the returned error
// carries the playlist id so the caller knows an empty shell exists.
func (s *Service) PublishPlaylist(ctx context.Context, accessToken, name string, tracks []blueprint.ResolvedTrack) (*blueprint.PublishResult, error) {
	if accessToken == "" {
		return nil, blueprint.ErrAuthRequired
	}

	client := s.NewClient(ctx, &oauth2.Token{AccessToken: accessToken})

	user, err := client.CurrentUser(ctx)
	if err != nil {
		log.Printf("\n[services][spotify][publish][PublishPlaylist] error - could not fetch current user: %v\n", err)
		return nil, blueprint.ErrPublish
	}

	playlist, err := client.CreatePlaylistForUser(ctx, user.ID, name, playlistDescription, true, false)
	if err != nil {
		log.Printf("\n[services][spotify][publish][PublishPlaylist] error - could not create playlist %q for user %s: %v\n", name, user.ID, err)
		return nil, blueprint.ErrPublish
	}

	trackIDs := make([]spotify.ID, 0, len(tracks))
	for _, track := range tracks {
		if track.ID != "" {
			trackIDs = append(trackIDs, spotify.ID(track.ID))
		}
	}

	// the add endpoint takes at most 100 tracks per call
	for start := 0; start < len(trackIDs); start += 100 {
		end := start + 100
		if end > len(trackIDs) {
			end = len(trackIDs)
		}
		if _, err = client.AddTracksToPlaylist(ctx, playlist.ID, trackIDs[start:end]...); err != nil {
			log.Printf("\n[services][spotify][publish][PublishPlaylist] error - could not add tracks to playlist %s: %v\n", playlist.ID, err)
			return nil, fmt.Errorf("%w: playlist %s was created but tracks could not be added", blueprint.ErrPublish, playlist.ID)
		}
	}

	log.Printf("\n[services][spotify][publish][PublishPlaylist] - published playlist %q with %d tracks for user %s\n", name, len(trackIDs), user.ID)

	return &blueprint.PublishResult{
		PlaylistURL: playlist.ExternalURLs["spotify"],
		PlaylistID:  playlist.ID.String(),
	}, nil
}
