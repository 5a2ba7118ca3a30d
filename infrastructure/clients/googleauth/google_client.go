package googleauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"youtube-lite/domain/repository"
)

// Client wraps the Google OAuth identity provider: consent URL, code
// exchange and userinfo lookup.
type Client struct {
	oauthConfig *oauth2.Config
}

// Config represents the Google OAuth client credentials
type Config struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
}

func NewGoogleClient(config *Config) (repository.IIdentity, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("google oauth client credentials are required")
	}
	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURL,
			Scopes: []string{
				oauth2api.UserinfoEmailScope,
				oauth2api.UserinfoProfileScope,
			},
			Endpoint: google.Endpoint,
		},
	}, nil
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCode trades the callback code for tokens and fetches the profile.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*repository.IdentityUser, error) {
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	service, err := oauth2api.NewService(ctx, option.WithTokenSource(c.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}
	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	if info.Id == "" {
		return nil, fmt.Errorf("identity provider returned no user id")
	}

	return &repository.IdentityUser{
		UID:         info.Id,
		DisplayName: info.Name,
		PhotoURL:    info.Picture,
		Email:       info.Email,
	}, nil
}
