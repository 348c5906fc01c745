package recommender

import (
	"fmt"
	"strings"

	"vibemix/blueprint"
)

const curatorSystemPrompt = "You are an expert music curator with deep knowledge of all music genres and artists. " +
	"You ONLY recommend real, existing songs that are authentically from the specified genres. " +
	"You never cross genres or suggest mainstream songs that merely 'sound like' a genre. " +
	"You know thousands of real songs from every genre and always respond with valid JSON only. " +
	"You prioritize specified artists heavily while maintaining strict genre purity."

const simpleSystemPrompt = "You are a music expert. Respond with valid JSON only containing real songs."

// buildPrompt constructs the full structured prompt for the primary generation
// attempt: use-case, genre/mood combinations, the artist quota when artists are
// requested, and the strict uniqueness and genre-purity constraints.
func buildPrompt(criteria *blueprint.Criteria, trackCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a playlist of exactly %d songs for %s.\n\n", trackCount, criteria.Usecase)

	if len(criteria.Genres) > 0 && len(criteria.Moods) > 0 {
		var combos []string
		for _, genre := range criteria.Genres {
			for _, mood := range criteria.Moods {
				combos = append(combos, fmt.Sprintf("%s %s", mood, genre))
			}
		}
		fmt.Fprintf(&b, "Focus specifically on these genre-mood combinations: %s. ", strings.Join(combos, ", "))
	}
	fmt.Fprintf(&b, "The playlist should feature %s music with %s vibes.\n\n", genresText(criteria.Genres), moodsText(criteria.Moods))

	if artists := criteria.ArtistList(); len(artists) > 0 {
		fmt.Fprintf(&b, "ARTIST PRIORITY: This is CRITICAL - Include songs from these specific artists: %s.\n", strings.Join(artists, ", "))
		b.WriteString("- MANDATORY: At least 60% of the playlist MUST be from these exact artists\n")
		b.WriteString("- Find songs from these artists that fit the specified genres and moods\n")
		b.WriteString("- The remaining songs should be from artists with very similar style within the same genre\n\n")
	} else {
		b.WriteString("ARTIST DIVERSITY: Find diverse artists within the specified genres, but ensure all are authentic to the genre.\n\n")
	}

	b.WriteString("CRITICAL UNIQUENESS REQUIREMENTS - THIS IS MANDATORY:\n")
	b.WriteString("- ZERO DUPLICATES: Each song title must be completely unique in the playlist\n")
	b.WriteString("- NO REPEATED TITLES: If a title appears once, it CANNOT appear again by ANY artist\n")
	b.WriteString("- NO REMIXES/VERSIONS: Don't include both a radio edit and an extended mix of the same song\n\n")

	b.WriteString("ULTRA-STRICT GENRE REQUIREMENTS:\n")
	b.WriteString("- ABSOLUTE GENRE PURITY: Every single song MUST be authentically from the specified genre(s)\n")
	b.WriteString("- NO CROSSOVER: Don't suggest songs from neighboring genres\n")
	b.WriteString("- Use ONLY real, existing songs that are available on Spotify\n\n")

	b.WriteString("Return ONLY valid JSON with this exact format:\n")
	b.WriteString(`{"playlistName": "Creative Playlist Name", "songs": [{"title": "Exact Song Title", "artist": "Exact Artist Name"}]}`)
	b.WriteString("\n\nCRITICAL: Respond with ONLY the JSON, no additional text or explanation.")

	return b.String()
}

// buildSimplePrompt is the stripped-down retry prompt used when the primary
// attempt produced something unusable.
func buildSimplePrompt(criteria *blueprint.Criteria, trackCount int) string {
	artists := ""
	if strings.TrimSpace(criteria.Artists) != "" {
		artists = fmt.Sprintf(" featuring %s", criteria.Artists)
	}
	return fmt.Sprintf(`Generate %d %s songs%s. Response must be valid JSON only:
{"playlistName": "Playlist Name", "songs": [{"title": "Song Title", "artist": "Artist Name"}]}`,
		trackCount, genresText(criteria.Genres), artists)
}
