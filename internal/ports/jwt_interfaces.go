package ports

import (
	"user-auth-server/internal/model"
	"user-auth-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateAccessToken(user *model.User) (string, error)
	ValidateJWT(tokenString string) (*security.Claims, error)
	ValidateExpiredToken(tokenString string) (*security.Claims, error)
}
