package images

import (
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibemix/blueprint"
)

func TestCoverImage(t *testing.T) {
	t.Run("picks a keyword from the matched pools", func(t *testing.T) {
		criteria := &blueprint.Criteria{
			Usecase: "workout",
			Genres:  []string{"rock"},
			Moods:   []string{"energetic"},
		}

		var pool []string
		pool = append(pool, useCaseTerms["workout"]...)
		pool = append(pool, moodTerms["energetic"]...)
		pool = append(pool, genreTerms["rock"]...)

		coverURL := CoverImage(criteria)
		require.True(t, strings.HasPrefix(coverURL, "https://source.unsplash.com/400x400/?"))

		term := strings.TrimPrefix(coverURL, "https://source.unsplash.com/400x400/?")
		decoded, err := url.QueryUnescape(term)
		require.NoError(t, err)
		assert.Contains(t, pool, decoded)
	})

	t.Run("keywords shared across pools are not over-weighted", func(t *testing.T) {
		// "relaxing" and "calm" both carry "peaceful"
		criteria := &blueprint.Criteria{
			Usecase: "relaxing",
			Genres:  []string{"jazz", "pop"},
			Moods:   []string{"calm", "happy"},
		}

		terms := searchTerms(criteria)
		seen := map[string]bool{}
		for _, term := range terms {
			assert.False(t, seen[term], "term %q appears more than once", term)
			seen[term] = true
		}
		assert.True(t, seen["peaceful"])
	})

	t.Run("falls back to generic music keywords", func(t *testing.T) {
		criteria := &blueprint.Criteria{
			Usecase: "juggling",
			Genres:  []string{"polka"},
			Moods:   []string{"confused"},
		}

		coverURL := CoverImage(criteria)
		term := strings.TrimPrefix(coverURL, "https://source.unsplash.com/400x400/?")
		assert.Contains(t, genericTerms, term)
	})
}

func TestPlaceholderImage(t *testing.T) {
	image := PlaceholderImage("Electric Rock Power Hour")

	require.True(t, strings.HasPrefix(image, "data:image/svg+xml,"))

	decoded, err := url.PathUnescape(strings.TrimPrefix(image, "data:image/svg+xml,"))
	require.NoError(t, err)
	assert.Contains(t, decoded, "#8a3d1b")
	assert.Contains(t, decoded, "#eb5f1f")
	// the overlay text is cut to keep it inside the square
	assert.Contains(t, decoded, ">Electric Rock P<")
	assert.NotContains(t, decoded, "Power Hour")
}

func TestPlaceholderImageMultibyteName(t *testing.T) {
	// a byte-wise cut at 15 would land inside the fourth note emoji
	image := PlaceholderImage("🎵🎵🎵🎵🎵 Party Mix Extra Long")

	decoded, err := url.PathUnescape(strings.TrimPrefix(image, "data:image/svg+xml,"))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(decoded))
	assert.Contains(t, decoded, ">🎵🎵🎵🎵🎵 Party Mix<")
}
