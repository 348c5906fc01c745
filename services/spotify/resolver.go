package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"

	"vibemix/blueprint"
	"vibemix/util"
)

// trackSearchTimeout bounds a single catalog lookup. A candidate that cannot
// be resolved within it is treated as not found, never as a request failure.
const trackSearchTimeout = 10 * time.Second

// trackCacheTTL is how long a resolved track stays cached. Catalog metadata is
// effectively immutable at this horizon.
const trackCacheTTL = 24 * time.Hour

// TrackSearcher resolves one candidate song against a music catalog. *Service
// is the production implementation.
type TrackSearcher interface {
	SearchTrack(ctx context.Context, candidate blueprint.CandidateSong) (*blueprint.ResolvedTrack, error)
}

// SearchTrack looks a candidate up on the spotify catalog, taking the first
// (most relevant) hit. Results are cached in redis when a client is available,
// keyed by the normalized artist and title.
func (s *Service) SearchTrack(ctx context.Context, candidate blueprint.CandidateSong) (*blueprint.ResolvedTrack, error) {
	cacheKey := fmt.Sprintf("spotify-%s-%s", normalizeCacheKey(candidate.Artist), normalizeCacheKey(candidate.Title))

	if s.RedisClient != nil {
		cached, err := s.RedisClient.Get(ctx, cacheKey).Result()
		if err != nil && err != redis.Nil {
			log.Printf("\n[services][spotify][resolver][SearchTrack] error - could not read cached result for %s: %v\n", cacheKey, err)
		}
		if err == nil {
			var track blueprint.ResolvedTrack
			if unmarshalErr := json.Unmarshal([]byte(cached), &track); unmarshalErr == nil {
				log.Printf("\n[services][spotify][resolver][SearchTrack] - found cached result for %s\n", cacheKey)
				return &track, nil
			}
			log.Printf("\n[services][spotify][resolver][SearchTrack] error - could not unmarshal cached result for %s, searching again\n", cacheKey)
		}
	}

	token := s.NewAuthToken(ctx)
	if token == nil {
		return nil, blueprint.ErrCatalogSearch
	}
	client := s.NewClient(ctx, token)

	query := fmt.Sprintf("track:%s artist:%s", candidate.Title, candidate.Artist)
	results, err := client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		log.Printf("\n[services][spotify][resolver][SearchTrack] error - could not search for track %q by %s: %v\n", candidate.Title, candidate.Artist, err)
		return nil, blueprint.ErrCatalogSearch
	}

	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		log.Printf("\n[services][spotify][resolver][SearchTrack] - no result for track %q by %s\n", candidate.Title, candidate.Artist)
		return nil, blueprint.EnoResult
	}

	track := resolvedFromFullTrack(results.Tracks.Tracks[0], candidate)

	if s.RedisClient != nil {
		serialized, marshalErr := json.Marshal(track)
		if marshalErr == nil {
			if cacheErr := s.RedisClient.Set(ctx, cacheKey, serialized, trackCacheTTL).Err(); cacheErr != nil {
				log.Printf("\n[services][spotify][resolver][SearchTrack] error - could not cache result for %s: %v\n", cacheKey, cacheErr)
			}
		}
	}

	return track, nil
}

// resolvedFromFullTrack maps a spotify catalog hit onto the playable track
// representation the playlist assembler consumes.
func resolvedFromFullTrack(track spotify.FullTrack, candidate blueprint.CandidateSong) *blueprint.ResolvedTrack {
	artists := lo.Map(track.Artists, func(artist spotify.SimpleArtist, _ int) string {
		return artist.Name
	})

	cover := ""
	if len(track.Album.Images) > 0 {
		cover = track.Album.Images[0].URL
	}

	return &blueprint.ResolvedTrack{
		ID:                track.ID.String(),
		Name:              track.Name,
		Artist:            strings.Join(artists, ", "),
		Album:             track.Album.Name,
		DurationSeconds:   int(track.Duration) / 1000,
		DurationFormatted: util.GetFormattedDuration(int(track.Duration)),
		ExternalURL:       track.ExternalURLs["spotify"],
		URI:               string(track.URI),
		Cover:             cover,
		Preview:           track.PreviewURL,
		SourceCandidate:   candidate,
	}
}

// ResolveTracks resolves candidates concurrently, one goroutine per candidate
// writing into its own indexed slot so the output keeps the input order.
// Candidates that fail or time out are dropped; resolution attrition is part
// of normal operation and never fails the batch.
func ResolveTracks(ctx context.Context, searcher TrackSearcher, candidates []blueprint.CandidateSong) []blueprint.ResolvedTrack {
	slots := make([]*blueprint.ResolvedTrack, len(candidates))
	var wg sync.WaitGroup

	for i, candidate := range candidates {
		wg.Add(1)
		go func(slot int, candidate blueprint.CandidateSong) {
			defer wg.Done()

			searchCtx, cancel := context.WithTimeout(ctx, trackSearchTimeout)
			defer cancel()

			track, err := searcher.SearchTrack(searchCtx, candidate)
			if err != nil {
				log.Printf("\n[services][spotify][resolver][ResolveTracks] - skipping track %q by %s: %v\n", candidate.Title, candidate.Artist, err)
				return
			}
			slots[slot] = track
		}(i, candidate)
	}
	wg.Wait()

	var resolved []blueprint.ResolvedTrack
	for _, track := range slots {
		if track != nil {
			resolved = append(resolved, *track)
		}
	}
	log.Printf("\n[services][spotify][resolver][ResolveTracks] - resolved %d of %d candidates\n", len(resolved), len(candidates))
	return resolved
}

// normalizeCacheKey collapses a name into a stable cache key fragment.
func normalizeCacheKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}
