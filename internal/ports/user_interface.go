package ports

import (
	"context"

	"user-auth-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, userUUID string, refreshToken string) error
	UpdateUser(ctx context.Context, user *model.User) error
}
