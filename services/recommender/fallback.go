package recommender

import (
	"log"
	"math"
	"math/rand"
	"strings"

	"github.com/samber/lo"

	"vibemix/blueprint"
)

// GenerateFallback builds recommendations by layered sampling from the track
// corpus, in priority order: requested artists, then genres, then use-case and
// mood pools, then genre/popular backfill. Every layer excludes songs already
// picked. Returning fewer than targetCount when the corpus runs dry is a
// documented edge case, not an error.
func GenerateFallback(criteria *blueprint.Criteria, targetCount int) *blueprint.Recommendations {
	playlistName := GeneratePlaylistName(criteria)
	var selected []blueprint.CandidateSong

	artistList := criteria.ArtistList()
	if len(artistList) > 0 {
		quota := int(math.Ceil(float64(targetCount) * 0.4))
		var artistTracks []blueprint.CandidateSong
		for _, pool := range trackDatabase {
			for _, track := range pool {
				for _, artist := range artistList {
					if artistMatches(track.Artist, artist) {
						artistTracks = append(artistTracks, track)
						break
					}
				}
			}
		}
		artistTracks = uniquePairs(artistTracks)
		shuffle(artistTracks)
		selected = append(selected, take(artistTracks, quota)...)
		log.Printf("\n[services][recommender][fallback][GenerateFallback] - selected %d tracks from requested artists: %s\n", len(selected), criteria.Artists)
	}

	remaining := targetCount - len(selected)
	if len(criteria.Genres) > 0 && remaining > 0 {
		quota := int(math.Ceil(float64(remaining) * 0.7))
		genreTracks := excluding(uniquePairs(genrePool(criteria.Genres)), selected)
		shuffle(genreTracks)
		picked := take(genreTracks, quota)
		selected = append(selected, picked...)
		log.Printf("\n[services][recommender][fallback][GenerateFallback] - added %d tracks from genres: %s\n", len(picked), strings.Join(criteria.Genres, ", "))
	}

	remaining = targetCount - len(selected)
	if remaining > 0 {
		var additional []blueprint.CandidateSong
		additional = append(additional, useCaseTracks[strings.ToLower(criteria.Usecase)]...)
		for _, mood := range criteria.Moods {
			additional = append(additional, moodTracks[strings.ToLower(mood)]...)
		}
		additional = excluding(uniquePairs(additional), selected)
		shuffle(additional)
		picked := take(additional, remaining)
		selected = append(selected, picked...)
		log.Printf("\n[services][recommender][fallback][GenerateFallback] - added %d tracks from use case and mood pools\n", len(picked))
	}

	remaining = targetCount - len(selected)
	if remaining > 0 {
		backfill := genrePool(criteria.Genres)
		if len(backfill) == 0 {
			backfill = append(backfill, trackDatabase["pop"]...)
			backfill = append(backfill, trackDatabase["rock"][:4]...)
			backfill = append(backfill, moodTracks["happy"]...)
		}
		backfill = excluding(uniquePairs(backfill), selected)
		shuffle(backfill)
		selected = append(selected, take(backfill, remaining)...)

		if len(selected) < targetCount {
			popular := excluding(popularBackfill, selected)
			selected = append(selected, take(popular, targetCount-len(selected))...)
		}
	}

	shuffle(selected)
	selected = take(selected, targetCount)
	log.Printf("\n[services][recommender][fallback][GenerateFallback] - generated %d song recommendations for %q\n", len(selected), playlistName)

	return &blueprint.Recommendations{
		PlaylistName: playlistName,
		Songs:        selected,
	}
}

func genrePool(genres []string) []blueprint.CandidateSong {
	var pool []blueprint.CandidateSong
	for _, genre := range genres {
		pool = append(pool, trackDatabase[strings.ToLower(genre)]...)
	}
	return pool
}

func uniquePairs(songs []blueprint.CandidateSong) []blueprint.CandidateSong {
	return lo.UniqBy(songs, func(song blueprint.CandidateSong) string {
		return song.Title + "|||" + song.Artist
	})
}

func excluding(songs, picked []blueprint.CandidateSong) []blueprint.CandidateSong {
	return lo.Filter(songs, func(song blueprint.CandidateSong, _ int) bool {
		return !lo.ContainsBy(picked, func(p blueprint.CandidateSong) bool {
			return p.Title == song.Title && p.Artist == song.Artist
		})
	})
}

// shuffle applies an unbiased in-place Fisher-Yates permutation.
func shuffle(songs []blueprint.CandidateSong) {
	rand.Shuffle(len(songs), func(i, j int) {
		songs[i], songs[j] = songs[j], songs[i]
	})
}

func take(songs []blueprint.CandidateSong, n int) []blueprint.CandidateSong {
	if n > len(songs) {
		n = len(songs)
	}
	if n < 0 {
		n = 0
	}
	return songs[:n]
}
