package usecase

import (
	"context"
	"errors"
	"strings"

	"codetutor-backend/internal/apperror"
	"codetutor-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	keySet *KeySet
	config *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(keySet *KeySet, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		keySet: keySet,
		config: cfg,
	}
}

func (u *authUsecase) VerifyToken(ctx context.Context, authorizationHeader string) (*TokenClaims, error) {
	if authorizationHeader == "" {
		return nil, apperror.Unauthenticated("missing authorization header")
	}
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return nil, apperror.Unauthenticated("authorization header must use the Bearer scheme")
	}
	tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")
	if tokenString == "" {
		return nil, apperror.Unauthenticated("empty bearer token")
	}

	// The keyfunc receives the parsed but still unverified token; only its
	// header is consulted here, never its claims.
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, apperror.Unauthenticated("token header missing key id")
		}
		return u.keySet.Key(ctx, kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(u.config.ClerkIssuerURL),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, apperror.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, apperror.Unauthenticated("invalid token: " + err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthenticated("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, apperror.Unauthenticated("token missing subject claim")
	}

	tokenClaims := &TokenClaims{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		tokenClaims.Email = email
	}
	if username, ok := claims["username"].(string); ok {
		tokenClaims.Username = username
	}
	return tokenClaims, nil
}
