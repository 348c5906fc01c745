package recommender

import (
	"log"
	"strings"
	"unicode"

	"vibemix/blueprint"
)

// noise tokens stripped from titles and artists before comparison. These are
// the usual suffix decorations that make "Song" and "Song (Radio Edit)" look
// like different recordings of the same thing.
var noiseTokens = map[string]bool{
	"feat":      true,
	"ft":        true,
	"featuring": true,
	"remix":     true,
	"radio":     true,
	"edit":      true,
	"version":   true,
	"remaster":  true,
	"vs":        true,
	"versus":    true,
	"with":      true,
	"and":       true,
}

// Normalize lower-cases, strips punctuation and whitespace and removes noise
// tokens, leaving a compact comparison key. "&" and every other punctuation
// mark disappear with the word split.
func Normalize(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, word := range words {
		if noiseTokens[word] {
			continue
		}
		b.WriteString(word)
	}
	return b.String()
}

// Dedupe filters songs for uniqueness. Two songs are duplicates when their
// normalized titles match, or their normalized (title, artist) pairs match;
// a title-only collision is enough to drop a later entry. First occurrence
// wins and order is preserved.
func Dedupe(songs []blueprint.CandidateSong) []blueprint.CandidateSong {
	seenTitles := map[string]bool{}
	seenPairs := map[string]bool{}

	var unique []blueprint.CandidateSong
	for _, song := range songs {
		titleKey := Normalize(song.Title)
		pairKey := titleKey + "|||" + Normalize(song.Artist)

		if seenTitles[titleKey] {
			log.Printf("\n[services][recommender][postprocess][Dedupe] - removed duplicate title: %q by %s\n", song.Title, song.Artist)
			continue
		}
		if seenPairs[pairKey] {
			log.Printf("\n[services][recommender][postprocess][Dedupe] - removed duplicate song: %q by %s\n", song.Title, song.Artist)
			continue
		}

		seenTitles[titleKey] = true
		seenPairs[pairKey] = true
		unique = append(unique, song)
	}
	return unique
}

// PostProcess enforces the uniqueness rule on generated recommendations,
// reports requested-artist coverage and truncates to the target count. The
// coverage report is advisory; songs are never removed for missing an artist.
func PostProcess(recs *blueprint.Recommendations, artists string, targetCount int) *blueprint.Recommendations {
	unique := Dedupe(recs.Songs)

	if strings.TrimSpace(artists) != "" {
		included, missing := ArtistCoverage(unique, artists)
		if len(included) > 0 {
			log.Printf("\n[services][recommender][postprocess][PostProcess] - included requested artists: %s\n", strings.Join(included, ", "))
		}
		if len(missing) > 0 {
			log.Printf("\n[services][recommender][postprocess][PostProcess] warn - missing requested artists: %s\n", strings.Join(missing, ", "))
		}
	}

	if len(unique) > targetCount {
		unique = unique[:targetCount]
	}

	// post-condition: no two surviving songs may share a normalized title.
	titles := map[string]bool{}
	duplicates := 0
	for _, song := range unique {
		key := Normalize(song.Title)
		if titles[key] {
			duplicates++
		}
		titles[key] = true
	}
	if duplicates > 0 {
		log.Printf("\n[services][recommender][postprocess][PostProcess] CRITICAL - %d duplicate titles survived post-processing\n", duplicates)
	}

	return &blueprint.Recommendations{
		PlaylistName: recs.PlaylistName,
		Songs:        unique,
		Error:        recs.Error,
	}
}

// ArtistCoverage reports which of the requested artists actually appear among
// the songs, via case-insensitive substring match in either direction. It is
// advisory only; nothing is removed for failing it.
func ArtistCoverage(songs []blueprint.CandidateSong, artists string) (included, missing []string) {
	var requested []string
	for _, artist := range strings.Split(artists, ",") {
		artist = strings.ToLower(strings.TrimSpace(artist))
		if artist != "" {
			requested = append(requested, artist)
		}
	}

	for _, want := range requested {
		found := false
		for _, song := range songs {
			if artistMatches(song.Artist, want) {
				found = true
				break
			}
		}
		if found {
			included = append(included, want)
		} else {
			missing = append(missing, want)
		}
	}
	return included, missing
}

// artistMatches applies the fuzzy rule used across the curation pipeline:
// case-insensitive substring containment in either direction.
func artistMatches(songArtist, requested string) bool {
	got := strings.ToLower(songArtist)
	want := strings.ToLower(requested)
	return strings.Contains(got, want) || strings.Contains(want, got)
}
