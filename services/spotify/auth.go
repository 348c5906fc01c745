package spotify

import (
	"context"
	"log"
	"os"
	"strings"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"vibemix/blueprint"
)

// redirectURI is where spotify sends the user back after consent. The frontend
// picks the code off that page and posts it to the token exchange endpoint.
// The tunnel host env carries a bare hostname, so the scheme is added here;
// spotify rejects a relative redirect uri.
func redirectURI() string {
	if uri := os.Getenv("SPOTIFY_REDIRECT_URI"); uri != "" {
		return uri
	}
	host := os.Getenv("TUNNEL_HOST")
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}
	return host + "/callback"
}

// authenticator builds the oauth authenticator with the playlist publishing
// scopes. Private-playlist modify is requested alongside public so users can
// flip visibility later without reauthorizing.
func (s *Service) authenticator() *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(s.ClientID),
		spotifyauth.WithClientSecret(s.ClientSecret),
		spotifyauth.WithRedirectURL(redirectURI()),
		spotifyauth.WithScopes(
			spotifyauth.ScopePlaylistModifyPublic,
			spotifyauth.ScopePlaylistModifyPrivate,
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopeUserReadEmail))
}

// FetchAuthURL returns the consent page url the user is redirected to.
func (s *Service) FetchAuthURL(state string) string {
	return s.authenticator().AuthURL(state)
}

// ExchangeCode swaps an authorization code for a user access token.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.authenticator().Exchange(ctx, code)
	if err != nil {
		log.Printf("\n[services][spotify][auth][ExchangeCode] error - could not exchange authorization code: %v\n", err)
		return nil, blueprint.ErrAuthExchange
	}
	return token, nil
}
