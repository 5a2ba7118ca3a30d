package usecase

import (
	"context"
	"errors"
	"time"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/utils"
)

const sessionTokenTTL = 24 * time.Hour

// ErrIdentityUnavailable means the OAuth provider client is not configured;
// sign-in is disabled but the rest of the API keeps working.
var ErrIdentityUnavailable = errors.New("identity provider not configured")

// IAuthUsecase runs the OAuth sign-in flow and issues session tokens.
type IAuthUsecase interface {
	AuthCodeURL(state string) (string, error)
	// Login exchanges the provider callback code, upserts the channel profile
	// and returns a signed session token plus the profile.
	Login(ctx context.Context, code string) (string, *model.UserProfile, error)
	GetProfile(ctx context.Context, uid string) (*model.UserProfile, error)
}

type authUsecase struct {
	identity  repository.IIdentity
	userRepo  repository.IUser
	secretKey string
}

func NewAuthUsecase(identity repository.IIdentity, userRepo repository.IUser, secretKey string) IAuthUsecase {
	return &authUsecase{identity: identity, userRepo: userRepo, secretKey: secretKey}
}

func (u *authUsecase) AuthCodeURL(state string) (string, error) {
	if u.identity == nil {
		return "", ErrIdentityUnavailable
	}
	return u.identity.AuthCodeURL(state), nil
}

func (u *authUsecase) Login(ctx context.Context, code string) (string, *model.UserProfile, error) {
	if u.identity == nil {
		return "", nil, ErrIdentityUnavailable
	}
	identity, err := u.identity.ExchangeCode(ctx, code)
	if err != nil {
		return "", nil, err
	}

	profile := &model.UserProfile{
		UID:         identity.UID,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		Email:       identity.Email,
	}
	if err := u.userRepo.Upsert(ctx, profile); err != nil {
		return "", nil, err
	}

	// Re-read so the response carries the persisted counters.
	stored, err := u.userRepo.GetByUID(ctx, identity.UID)
	if err == nil {
		profile = stored
	}

	now := utils.GetCurrentTime()
	token, err := utils.GenerateToken(map[string]interface{}{
		"sub":          profile.UID,
		"display_name": profile.DisplayName,
		"photo_url":    profile.PhotoURL,
		"email":        profile.Email,
		"iat":          now.Unix(),
		"exp":          now.Add(sessionTokenTTL).Unix(),
	}, u.secretKey)
	if err != nil {
		return "", nil, err
	}
	return token, profile, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, uid string) (*model.UserProfile, error) {
	return u.userRepo.GetByUID(ctx, uid)
}
