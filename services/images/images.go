// Package images picks a cover image for a generated playlist. The cover is a
// keyword-driven stock photo url; when nothing fits, a branded SVG gradient
// placeholder carries the playlist name instead.
package images

import (
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"vibemix/blueprint"
)

// keyword pools per listening context. One keyword is sampled from the union
// of every pool the criteria hit.
var useCaseTerms = map[string][]string{
	"workout":  {"fitness", "gym", "exercise", "sports", "energy", "strength"},
	"work":     {"office", "business", "productivity", "focus", "minimalist", "clean"},
	"studying": {"books", "library", "education", "focus", "learning", "knowledge"},
	"relaxing": {"nature", "calm", "peaceful", "zen", "sunset", "ocean"},
	"sleeping": {"night", "moon", "stars", "peaceful", "dark", "serene"},
}

var moodTerms = map[string][]string{
	"happy":     {"bright", "colorful", "sunshine", "joy", "vibrant", "yellow"},
	"energetic": {"dynamic", "vibrant", "electric", "energy", "lightning", "red"},
	"calm":      {"peaceful", "serene", "blue", "water", "clouds", "minimalist"},
	"sad":       {"dark", "rain", "melancholy", "blue", "storm", "moody"},
	"romantic":  {"sunset", "hearts", "pink", "flowers", "love", "warm"},
	"nostalgic": {"vintage", "retro", "sepia", "old", "memories", "film"},
	"motivated": {"mountain", "success", "achievement", "goal", "victory", "climbing"},
}

var genreTerms = map[string][]string{
	"rock":       {"guitar", "concert", "stage", "music", "instruments", "band"},
	"jazz":       {"saxophone", "piano", "vintage", "music", "club", "noir"},
	"classical":  {"orchestra", "piano", "violin", "elegant", "concert hall", "instruments"},
	"electronic": {"neon", "digital", "futuristic", "lights", "cyber", "technology"},
	"pop":        {"colorful", "modern", "trendy", "music", "bright", "contemporary"},
	"country":    {"rural", "countryside", "guitar", "folk", "americana", "rustic"},
	"hiphop":     {"urban", "city", "street", "graffiti", "microphone", "beats"},
}

var genericTerms = []string{"music", "headphones", "sound", "audio", "vinyl", "abstract"}

// searchTerms builds the union of every keyword pool the criteria hit.
// Keywords shared across pools appear once so the pick stays uniform.
func searchTerms(criteria *blueprint.Criteria) []string {
	var terms []string
	terms = append(terms, useCaseTerms[strings.ToLower(criteria.Usecase)]...)
	for _, mood := range criteria.Moods {
		terms = append(terms, moodTerms[strings.ToLower(mood)]...)
	}
	for _, genre := range criteria.Genres {
		terms = append(terms, genreTerms[strings.ToLower(genre)]...)
	}
	if len(terms) == 0 {
		return genericTerms
	}
	return lo.Uniq(terms)
}

// CoverImage returns a stock photo url themed to the criteria.
func CoverImage(criteria *blueprint.Criteria) string {
	terms := searchTerms(criteria)
	term := terms[rand.Intn(len(terms))]
	log.Printf("\n[services][images][CoverImage] - selected cover search term %q\n", term)
	return fmt.Sprintf("https://source.unsplash.com/400x400/?%s", url.QueryEscape(term))
}

// PlaceholderImage renders the branded gradient fallback as a data uri, with
// the playlist name overlaid. Long names are cut so the text stays inside the
// square.
func PlaceholderImage(playlistName string) string {
	// cut by runes, not bytes; a byte cut can split a multibyte character
	// and leave invalid utf-8 inside the text node
	name := playlistName
	if runes := []rune(name); len(runes) > 15 {
		name = string(runes[:15])
	}

	svg := fmt.Sprintf(`<svg width="400" height="400" xmlns="http://www.w3.org/2000/svg">
<defs>
<linearGradient id="grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
<stop offset="0%%" style="stop-color:#8a3d1b;stop-opacity:1" />
<stop offset="100%%" style="stop-color:#eb5f1f;stop-opacity:1" />
</linearGradient>
</defs>
<rect width="400" height="400" fill="url(#grad)" />
<text x="200" y="200" text-anchor="middle" fill="white" font-family="Arial" font-size="24" font-weight="bold">%s</text>
</svg>`, name)

	return "data:image/svg+xml," + url.PathEscape(svg)
}
