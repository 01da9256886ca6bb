package config

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuth2 builds the Google OAuth client configuration.
func (c GoogleCalendarConfig) OAuth2() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       c.Scopes,
		Endpoint:     google.Endpoint,
	}
}
