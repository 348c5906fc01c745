// Package assembler folds resolved tracks into the final playlist payload.
package assembler

import (
	"log"
	"math"

	"vibemix/blueprint"
)

// Assemble builds the playlist returned to the caller. Track order is the
// resolved order; the total duration is rounded to whole minutes.
func Assemble(name, image string, tracks []blueprint.ResolvedTrack) *blueprint.Playlist {
	totalSeconds := 0
	for _, track := range tracks {
		totalSeconds += track.DurationSeconds
	}

	playlist := &blueprint.Playlist{
		Name:                 name,
		Image:                image,
		TotalTracks:          len(tracks),
		TotalDurationMinutes: int(math.Round(float64(totalSeconds) / 60)),
		Tracks:               tracks,
	}
	log.Printf("\n[services][assembler][Assemble] - assembled playlist %q with %d tracks, %d minutes\n", playlist.Name, playlist.TotalTracks, playlist.TotalDurationMinutes)
	return playlist
}
