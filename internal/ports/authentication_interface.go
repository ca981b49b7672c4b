package ports

import (
	"context"

	"user-auth-server/internal/model"
)

type AuthenticationService interface {
	Authenticate(ctx context.Context, userName, password string) (*model.TokensPair, error)
	RefreshToken(ctx context.Context, accessToken, refreshToken string) (*model.TokensPair, error)
}
