package playlist

import (
	"context"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"vibemix/blueprint"
	"vibemix/services/assembler"
	"vibemix/services/images"
	spotifyservice "vibemix/services/spotify"
	"vibemix/util"
)

// RecommendationGenerator produces candidate songs for a set of criteria.
// *recommender.Generator is the production implementation.
type RecommendationGenerator interface {
	Generate(ctx context.Context, criteria *blueprint.Criteria) *blueprint.Recommendations
}

// AuthExchanger is the oauth surface of the catalog service.
type AuthExchanger interface {
	FetchAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
}

// Controller handles the playlist curation endpoints.
type Controller struct {
	Generator RecommendationGenerator
	Searcher  spotifyservice.TrackSearcher
	Publisher spotifyservice.Publisher
	Auth      AuthExchanger
}

func NewController(generator RecommendationGenerator, searcher spotifyservice.TrackSearcher, publisher spotifyservice.Publisher, auth AuthExchanger) *Controller {
	return &Controller{
		Generator: generator,
		Searcher:  searcher,
		Publisher: publisher,
		Auth:      auth,
	}
}

// GeneratePlaylist runs the full curation pipeline: generate candidate songs
// for the criteria, resolve them against the catalog, and assemble the
// playlist. Candidates the catalog cannot resolve are dropped from the result,
// so the track count may come in under the requested length.
func (c *Controller) GeneratePlaylist(ctx *fiber.Ctx) error {
	var criteria blueprint.Criteria
	if err := ctx.BodyParser(&criteria); err != nil {
		log.Printf("\n[controllers][playlist][GeneratePlaylist] error - could not parse request body: %v\n", err)
		return util.ErrorResponse(ctx, http.StatusBadRequest, "invalid body", "The request body could not be parsed.")
	}
	if err := criteria.Validate(); err != nil {
		log.Printf("\n[controllers][playlist][GeneratePlaylist] error - invalid criteria: %v\n", err)
		return util.ErrorResponse(ctx, http.StatusBadRequest, err.Error(), "A use case and at least one genre and mood are required.")
	}

	recommendations := c.Generator.Generate(ctx.UserContext(), &criteria)
	if len(recommendations.Songs) == 0 {
		details := recommendations.Error
		if details == "" {
			details = "Failed to generate playlist"
		}
		log.Printf("\n[controllers][playlist][GeneratePlaylist] error - no recommendations generated: %s\n", details)
		return util.ErrorResponse(ctx, http.StatusInternalServerError, "generation failed", details)
	}

	tracks := spotifyservice.ResolveTracks(ctx.UserContext(), c.Searcher, recommendations.Songs)

	image := images.CoverImage(&criteria)
	if len(tracks) == 0 {
		// nothing resolved; the branded placeholder keeps the result card rendering
		image = images.PlaceholderImage(recommendations.PlaylistName)
	}

	generated := assembler.Assemble(recommendations.PlaylistName, image, tracks)

	return util.SuccessResponse(ctx, http.StatusOK, fiber.Map{
		"message":              "Playlist generated successfully",
		"criteria":             criteria,
		"playlistName":         generated.Name,
		"playlistImage":        generated.Image,
		"totalTracks":          generated.TotalTracks,
		"totalDuration":        generated.TotalDurationMinutes,
		"tracks":               generated.Tracks,
		"musicRecommendations": recommendations.Songs,
		"spotifyMatches":       len(generated.Tracks),
		"totalRecommendations": len(recommendations.Songs),
	})
}

// CreatePlaylist publishes a generated playlist to the user's spotify account.
// A missing access token is rejected before any network call is made.
func (c *Controller) CreatePlaylist(ctx *fiber.Ctx) error {
	var body blueprint.CreatePlaylistBody
	if err := ctx.BodyParser(&body); err != nil {
		log.Printf("\n[controllers][playlist][CreatePlaylist] error - could not parse request body: %v\n", err)
		return util.ErrorResponse(ctx, http.StatusBadRequest, "invalid body", "The request body could not be parsed.")
	}

	if body.AccessToken == "" {
		log.Printf("\n[controllers][playlist][CreatePlaylist] error - missing access token\n")
		return util.ErrorResponse(ctx, http.StatusBadRequest, blueprint.ErrAuthRequired.Error(), "An access token is required to create a playlist.")
	}

	name := body.PlaylistName
	if name == "" {
		name = "Your VibeMix Playlist"
	}

	result, err := c.Publisher.PublishPlaylist(ctx.UserContext(), body.AccessToken, name, body.Tracks)
	if err != nil {
		log.Printf("\n[controllers][playlist][CreatePlaylist] error - could not publish playlist: %v\n", err)
		return util.ErrorResponse(ctx, http.StatusInternalServerError, "Failed to create Spotify playlist", err.Error())
	}

	return util.SuccessResponse(ctx, http.StatusOK, result)
}

// ExchangeToken swaps an oauth authorization code for a user access token.
func (c *Controller) ExchangeToken(ctx *fiber.Ctx) error {
	var body blueprint.TokenExchangeBody
	if err := ctx.BodyParser(&body); err != nil {
		log.Printf("\n[controllers][playlist][ExchangeToken] error - could not parse request body: %v\n", err)
		return util.ErrorResponse(ctx, http.StatusBadRequest, "invalid body", "The request body could not be parsed.")
	}
	if body.Code == "" {
		return util.ErrorResponse(ctx, http.StatusBadRequest, "missing code", "An authorization code is required.")
	}

	token, err := c.Auth.ExchangeCode(ctx.UserContext(), body.Code)
	if err != nil {
		log.Printf("\n[controllers][playlist][ExchangeToken] error - could not exchange code: %v\n", err)
		return util.ErrorResponse(ctx, http.StatusInternalServerError, blueprint.ErrAuthExchange.Error(), "Failed to exchange the authorization code.")
	}

	return util.SuccessResponse(ctx, http.StatusOK, fiber.Map{
		"access_token": token.AccessToken,
		"message":      "Authorization successful",
	})
}

// RedirectAuth sends the user to the spotify consent page. Keeping the url
// construction server side means redirect uri and tunnel handling live in one
// place.
func (c *Controller) RedirectAuth(ctx *fiber.Ctx) error {
	state := uuid.NewString()
	return ctx.Redirect(c.Auth.FetchAuthURL(state), http.StatusFound)
}
