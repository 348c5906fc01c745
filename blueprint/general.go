package blueprint

import (
	"errors"
	"strings"
)

// perhaps have a different Error type declarations somewhere. For now, be here
var (
	ErrGenerationFormat = errors.New("GENERATION_FORMAT_ERROR")
	ErrCatalogSearch    = errors.New("CATALOG_SEARCH_ERROR")
	ErrAuthExchange     = errors.New("AUTH_EXCHANGE_ERROR")
	ErrAuthRequired     = errors.New("AUTH_REQUIRED")
	ErrPublish          = errors.New("PUBLISH_ERROR")
	EnoResult           = errors.New("Not Found")
	ErrInvalidCriteria  = errors.New("invalid criteria")
)

// Criteria is the listening context the user describes in the briefing wizard.
// It doubles as the request body for the generate-playlist endpoint.
type Criteria struct {
	Usecase string   `json:"usecase"`
	Genres  []string `json:"genre"`
	Moods   []string `json:"mood"`
	Artists string   `json:"artists"`
	Length  string   `json:"length"`
}

// Validate makes sure a generation request carries enough context to curate from.
func (c *Criteria) Validate() error {
	if strings.TrimSpace(c.Usecase) == "" {
		return ErrInvalidCriteria
	}
	if len(c.Genres) == 0 || len(c.Moods) == 0 {
		return ErrInvalidCriteria
	}
	return nil
}

// ArtistList splits the comma-delimited artists input into cleaned names.
func (c *Criteria) ArtistList() []string {
	var artists []string
	for _, artist := range strings.Split(c.Artists, ",") {
		artist = strings.TrimSpace(artist)
		if artist != "" {
			artists = append(artists, artist)
		}
	}
	return artists
}

// CreatePlaylistBody is the request body for publishing a generated playlist
// to the user's spotify account.
type CreatePlaylistBody struct {
	PlaylistName string          `json:"playlistName"`
	Tracks       []ResolvedTrack `json:"tracks"`
	AccessToken  string          `json:"accessToken"`
}

// TokenExchangeBody is the request body for the oauth code exchange endpoint.
type TokenExchangeBody struct {
	Code string `json:"code"`
}

// VibemixLoggerOptions carries the request scoped metadata attached to the
// sentry breadcrumbs of the zap logger.
type VibemixLoggerOptions struct {
	Component string      `json:"component"`
	RequestID string      `json:"request_id"`
	Error     interface{} `json:"error"`
	AddTrace  bool        `json:"add_trace"`
}
