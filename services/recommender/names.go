package recommender

import (
	"fmt"
	"math/rand"
	"strings"

	"vibemix/blueprint"
)

var useCaseNames = map[string][]string{
	"workout":  {"Power Hour", "Beast Mode", "Gym Fuel", "Sweat Session", "High Energy"},
	"work":     {"Focus Flow", "Productivity Boost", "Deep Work", "Office Vibes", "Work Mode"},
	"studying": {"Study Zone", "Brain Fuel", "Focus Mode", "Study Beats", "Learning Lounge"},
	"relaxing": {"Chill Out", "Peaceful Moments", "Zen Mode", "Calm Vibes", "Serenity"},
	"sleeping": {"Night Sounds", "Sleep Waves", "Dreamscape", "Bedtime Stories", "Midnight Calm"},
}

var genericNames = []string{"Perfect Playlist", "Music Mix", "Song Collection", "Vibe Check"}

var moodAdjectives = map[string][]string{
	"happy":     {"Bright", "Sunny", "Joyful", "Uplifting", "Cheerful"},
	"energetic": {"Electric", "Dynamic", "High Energy", "Pumped", "Charged"},
	"calm":      {"Serene", "Peaceful", "Tranquil", "Soothing", "Gentle"},
	"sad":       {"Melancholy", "Blue", "Reflective", "Emotional", "Somber"},
	"romantic":  {"Love Songs", "Heart Beats", "Romance", "Sweet Moments", "Passion"},
}

// GeneratePlaylistName derives a playlist name from the use-case and mood
// pools: a base name keyed by use-case, prefixed with a mood adjective and the
// first genre when both are present.
func GeneratePlaylistName(criteria *blueprint.Criteria) string {
	baseNames, ok := useCaseNames[strings.ToLower(criteria.Usecase)]
	if !ok {
		baseNames = genericNames
	}
	baseName := baseNames[rand.Intn(len(baseNames))]

	if len(criteria.Genres) > 0 && len(criteria.Moods) > 0 {
		if adjectives, ok := moodAdjectives[strings.ToLower(criteria.Moods[0])]; ok {
			adjective := adjectives[rand.Intn(len(adjectives))]
			return fmt.Sprintf("%s %s %s", adjective, titleCase(criteria.Genres[0]), baseName)
		}
	}

	return baseName
}

// genresText renders the genre list for prompts and fallback names.
func genresText(genres []string) string {
	if len(genres) == 0 {
		return "various genres"
	}
	return strings.Join(genres, ", ")
}

func moodsText(moods []string) string {
	if len(moods) == 0 {
		return "any mood"
	}
	return strings.Join(moods, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
