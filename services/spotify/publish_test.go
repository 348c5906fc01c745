package spotify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vibemix/blueprint"
)

func TestPublishPlaylistRequiresAccessToken(t *testing.T) {
	service := NewService("id", "secret", nil)

	// no network call happens for a missing token; the service has no live
	// credentials, so reaching the network would fail differently
	result, err := service.PublishPlaylist(context.Background(), "", "My Playlist", []blueprint.ResolvedTrack{
		{ID: "abc", Name: "Song"},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, blueprint.ErrAuthRequired)
}
