package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vibemix/blueprint"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "song", Normalize("Song (Radio Edit)"))
	assert.Equal(t, "song", Normalize("SONG"))
	assert.Equal(t, "tomjerry", Normalize("Tom & Jerry"))
	assert.Equal(t, "dojacatsza", Normalize("Doja Cat feat. SZA"))
	assert.Equal(t, "bohemianrhapsody", Normalize("Bohemian Rhapsody (Remaster)"))
	assert.Equal(t, "", Normalize(""))
}

func TestDedupe(t *testing.T) {
	t.Run("removes title collisions across artists", func(t *testing.T) {
		songs := []blueprint.CandidateSong{
			{Title: "Golden", Artist: "Jill Scott"},
			{Title: "Golden", Artist: "joji"},
			{Title: "Levels", Artist: "Avicii"},
		}

		unique := Dedupe(songs)
		assert.Len(t, unique, 2)
		assert.Equal(t, "Jill Scott", unique[0].Artist)
		assert.Equal(t, "Levels", unique[1].Title)
	})

	t.Run("treats decorated variants as the same recording", func(t *testing.T) {
		songs := []blueprint.CandidateSong{
			{Title: "Song", Artist: "Artist"},
			{Title: "Song (Radio Edit)", Artist: "Artist"},
			{Title: "Song - Extended Remix", Artist: "Artist"},
		}

		unique := Dedupe(songs)
		assert.Len(t, unique, 1)
		assert.Equal(t, "Song", unique[0].Title)
	})

	t.Run("first occurrence wins and order is preserved", func(t *testing.T) {
		songs := []blueprint.CandidateSong{
			{Title: "B Side", Artist: "One"},
			{Title: "A Side", Artist: "Two"},
			{Title: "B Side", Artist: "Three"},
		}

		unique := Dedupe(songs)
		assert.Equal(t, []blueprint.CandidateSong{
			{Title: "B Side", Artist: "One"},
			{Title: "A Side", Artist: "Two"},
		}, unique)
	})
}

func TestPostProcess(t *testing.T) {
	t.Run("truncates to the target count", func(t *testing.T) {
		recs := &blueprint.Recommendations{
			PlaylistName: "Test Mix",
			Songs: []blueprint.CandidateSong{
				{Title: "One", Artist: "A"},
				{Title: "Two", Artist: "B"},
				{Title: "Three", Artist: "C"},
			},
		}

		processed := PostProcess(recs, "", 2)
		assert.Len(t, processed.Songs, 2)
		assert.Equal(t, "Test Mix", processed.PlaylistName)
	})

	t.Run("never removes songs for missing a requested artist", func(t *testing.T) {
		recs := &blueprint.Recommendations{
			PlaylistName: "Test Mix",
			Songs: []blueprint.CandidateSong{
				{Title: "One", Artist: "Somebody Else"},
				{Title: "Two", Artist: "Another Act"},
			},
		}

		processed := PostProcess(recs, "Queen", 10)
		assert.Len(t, processed.Songs, 2)
	})

	t.Run("no two surviving songs share a normalized title", func(t *testing.T) {
		recs := &blueprint.Recommendations{
			PlaylistName: "Test Mix",
			Songs: []blueprint.CandidateSong{
				{Title: "Song", Artist: "A"},
				{Title: "Song (Radio Edit)", Artist: "B"},
				{Title: "song", Artist: "C"},
				{Title: "Other", Artist: "D"},
			},
		}

		processed := PostProcess(recs, "", 10)
		titles := map[string]bool{}
		for _, song := range processed.Songs {
			key := Normalize(song.Title)
			assert.False(t, titles[key], "duplicate normalized title %q", key)
			titles[key] = true
		}
	})
}

func TestArtistCoverage(t *testing.T) {
	songs := []blueprint.CandidateSong{
		{Title: "Bohemian Rhapsody", Artist: "Queen"},
		{Title: "HUMBLE.", Artist: "Kendrick Lamar"},
	}

	included, missing := ArtistCoverage(songs, "queen, Drake, kendrick")
	assert.Equal(t, []string{"queen", "kendrick"}, included)
	assert.Equal(t, []string{"drake"}, missing)
}
