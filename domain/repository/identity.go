package repository

import "context"

// IdentityUser is the profile returned by the identity provider on sign-in.
type IdentityUser struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
	Email       string `json:"email"`
}

// IIdentity wraps the third-party identity provider boundary.
type IIdentity interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*IdentityUser, error)
}
