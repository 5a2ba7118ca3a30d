package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
)

// Context keys populated from the session token.
const (
	CtxUserID      = "user_id"
	CtxDisplayName = "display_name"
	CtxPhotoURL    = "photo_url"
	CtxEmail       = "email"
)

// Auth requires a valid Bearer session token and populates the user context
// keys. Requests without one are rejected with 401.
func Auth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := parseBearer(ctx, secretKey)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Res{
				ResponseCode:    dto.CodeUnauth,
				ResponseMessage: unauthorizedMessage(err),
			})
			return
		}
		setUserContext(ctx, claims)
		ctx.Next()
	}
}

// OptionalAuth populates the user context when a valid token is present but
// lets anonymous requests through. Used on the view endpoint, where signed-in
// viewers additionally get a history entry.
func OptionalAuth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, err := parseBearer(ctx, secretKey); err == nil {
			setUserContext(ctx, claims)
		}
		ctx.Next()
	}
}

func setUserContext(ctx *gin.Context, claims *model.UserClaims) {
	ctx.Set(CtxUserID, claims.Subject)
	ctx.Set(CtxDisplayName, claims.DisplayName)
	ctx.Set(CtxPhotoURL, claims.PhotoURL)
	ctx.Set(CtxEmail, claims.Email)
}

var errMissingToken = errors.New("missing bearer token")

func parseBearer(ctx *gin.Context, secretKey string) (*model.UserClaims, error) {
	authorization := ctx.Request.Header.Get("Authorization")
	if authorization == "" {
		return nil, errMissingToken
	}
	parts := strings.SplitN(authorization, "Bearer ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, errMissingToken
	}

	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

func unauthorizedMessage(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
	}
	return "Unauthorized"
}
