package recommender

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"vibemix/util"
)

const defaultTrackCount = 20

var minutesPattern = regexp.MustCompile(`(\d+)\s*(min|minute)`)

// TargetTrackCount maps the free-form length input onto a concrete number of
// tracks. Size keywords win over a minute spec; anything unrecognized gets the
// default. A "N minutes" spec assumes roughly three minutes per track, bounded
// to a sane playlist size.
func TargetTrackCount(length string) int {
	if strings.TrimSpace(length) == "" {
		return defaultTrackCount
	}

	lower := strings.ToLower(length)
	switch {
	case strings.Contains(lower, "short") || strings.Contains(lower, "quick"):
		return 10
	case strings.Contains(lower, "long") || strings.Contains(lower, "extended"):
		return 40
	case strings.Contains(lower, "medium") || strings.Contains(lower, "normal"):
		return defaultTrackCount
	}

	if match := minutesPattern.FindStringSubmatch(lower); match != nil {
		minutes, err := strconv.Atoi(match[1])
		if err == nil {
			return util.Clamp(int(math.Round(float64(minutes)/3)), 5, 50)
		}
	}

	return defaultTrackCount
}
