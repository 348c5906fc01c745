package recommender

import (
	"encoding/json"
	"strings"

	"vibemix/blueprint"
)

// ExtractJSON pulls the JSON document out of a model response that may be
// wrapped in markdown code fences or surrounded by prose: strip the fences,
// then take the outermost {...} span.
func ExtractJSON(raw string) string {
	clean := raw
	if idx := strings.Index(clean, "```json"); idx != -1 {
		clean = clean[idx+len("```json"):]
		if end := strings.Index(clean, "```"); end != -1 {
			clean = clean[:end]
		}
	} else if strings.Contains(clean, "```") {
		parts := strings.SplitN(clean, "```", 3)
		if len(parts) >= 2 {
			clean = parts[1]
		}
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start != -1 && end != -1 && end > start {
		clean = clean[start : end+1]
	}
	return clean
}

// ParseRecommendations parses a model response into recommendations. Strict
// mode rejects output with a missing playlist name; both modes reject a
// missing or empty songs list. Rejections surface as ErrGenerationFormat so
// the caller can move down the strategy ladder.
func ParseRecommendations(raw string, strict bool) (*blueprint.Recommendations, error) {
	var recs blueprint.Recommendations
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &recs); err != nil {
		return nil, blueprint.ErrGenerationFormat
	}

	if strict && recs.PlaylistName == "" {
		return nil, blueprint.ErrGenerationFormat
	}
	if len(recs.Songs) == 0 {
		return nil, blueprint.ErrGenerationFormat
	}

	if recs.PlaylistName == "" {
		recs.PlaylistName = "Generated Playlist"
	}
	return &recs, nil
}
