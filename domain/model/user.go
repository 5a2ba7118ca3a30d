package model

import (
	"github.com/golang-jwt/jwt"
)

// UserProfile is the channel document; 1:1 with a signed-in account.
type UserProfile struct {
	UID         string `json:"uid" bson:"_id"`
	DisplayName string `json:"display_name" bson:"displayName"`
	PhotoURL    string `json:"photo_url" bson:"photoURL"`
	BannerURL   string `json:"banner_url" bson:"bannerURL"`
	Description string `json:"description" bson:"description"`
	Subscribers int64  `json:"subscribers" bson:"subscribers"`
	Email       string `json:"email" bson:"email"`
}

// UserClaims carries the session identity inside the JWT.
type UserClaims struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
	Email       string `json:"email"`
	jwt.StandardClaims
}
