package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vibemix/blueprint"
)

func TestAssemble(t *testing.T) {
	tracks := []blueprint.ResolvedTrack{
		{ID: "1", Name: "One", DurationSeconds: 200},
		{ID: "2", Name: "Two", DurationSeconds: 190},
		{ID: "3", Name: "Three", DurationSeconds: 245},
	}

	playlist := Assemble("Test Mix", "https://example.com/cover.jpg", tracks)

	assert.Equal(t, "Test Mix", playlist.Name)
	assert.Equal(t, "https://example.com/cover.jpg", playlist.Image)
	assert.Equal(t, 3, playlist.TotalTracks)
	// 635 seconds rounds to 11 minutes
	assert.Equal(t, 11, playlist.TotalDurationMinutes)
	assert.Equal(t, tracks, playlist.Tracks)
}

func TestAssembleEmpty(t *testing.T) {
	playlist := Assemble("Empty", "", nil)

	assert.Equal(t, 0, playlist.TotalTracks)
	assert.Equal(t, 0, playlist.TotalDurationMinutes)
	assert.Empty(t, playlist.Tracks)
}
