package spotify

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Service holds the spotify app credentials and the optional redis client used
// to cache catalog search results. The redis client may be nil; caching is
// skipped in that case.
type Service struct {
	ClientID     string
	ClientSecret string
	RedisClient  *redis.Client
}

func NewService(clientID, clientSecret string, redisClient *redis.Client) *Service {
	return &Service{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedisClient:  redisClient,
	}
}

// NewAuthToken returns a fresh client-credentials token. This is the app-only
// grant used for catalog search; it carries no user scopes.
func (s *Service) NewAuthToken(ctx context.Context) *oauth2.Token {
	config := &clientcredentials.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := config.Token(ctx)
	if err != nil {
		log.Printf("\n[services][spotify][base][NewAuthToken] error - could not fetch spotify token: %v\n", err)
		return nil
	}
	return token
}

// NewClient returns a spotify client authenticated with the passed token. The
// token can be either a client-credentials token or a user access token from
// the oauth code exchange.
func (s *Service) NewClient(ctx context.Context, token *oauth2.Token) *spotify.Client {
	httpClient := spotifyauth.New(spotifyauth.WithClientID(s.ClientID), spotifyauth.WithClientSecret(s.ClientSecret)).Client(ctx, token)
	return spotify.New(httpClient)
}
