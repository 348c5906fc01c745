package recommender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibemix/blueprint"
)

func workoutRockCriteria() *blueprint.Criteria {
	return &blueprint.Criteria{
		Usecase: "workout",
		Genres:  []string{"rock"},
		Moods:   []string{"energetic"},
		Length:  "short",
	}
}

func TestGenerateFallback(t *testing.T) {
	t.Run("returns exactly the target count when the corpus is large enough", func(t *testing.T) {
		recs := GenerateFallback(workoutRockCriteria(), 10)
		require.NotNil(t, recs)
		assert.Len(t, recs.Songs, 10)
		assert.NotEmpty(t, recs.PlaylistName)
	})

	t.Run("never returns more than the target count", func(t *testing.T) {
		criteria := &blueprint.Criteria{
			Usecase: "workout",
			Genres:  []string{"rock", "pop", "hiphop", "electronic"},
			Moods:   []string{"energetic", "happy"},
		}
		for _, target := range []int{5, 10, 20, 40} {
			recs := GenerateFallback(criteria, target)
			assert.LessOrEqual(t, len(recs.Songs), target)
		}
	})

	t.Run("biases toward requested artists", func(t *testing.T) {
		criteria := workoutRockCriteria()
		criteria.Artists = "Queen"

		recs := GenerateFallback(criteria, 10)
		matches := 0
		for _, song := range recs.Songs {
			if strings.Contains(strings.ToLower(song.Artist), "queen") {
				matches++
			}
		}
		// the corpus carries several queen tracks; the artist layer must pick
		// at least one of them
		assert.GreaterOrEqual(t, matches, 1)
	})

	t.Run("never repeats a song", func(t *testing.T) {
		recs := GenerateFallback(workoutRockCriteria(), 20)
		seen := map[string]bool{}
		for _, song := range recs.Songs {
			key := song.Title + "|||" + song.Artist
			assert.False(t, seen[key], "repeated song %q by %s", song.Title, song.Artist)
			seen[key] = true
		}
	})

	t.Run("backfills from popular defaults for unknown criteria", func(t *testing.T) {
		criteria := &blueprint.Criteria{
			Usecase: "underwater basket weaving",
			Genres:  []string{"polka"},
			Moods:   []string{"confused"},
		}

		recs := GenerateFallback(criteria, 10)
		assert.NotEmpty(t, recs.Songs)
	})
}
