package ports

import (
	"context"

	"user-auth-server/internal/model"
)

// UserCache : Redis слой поверх хранилища пользователей
type UserCache interface {
	SetUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, email string) (*model.User, error)
	DeleteUser(ctx context.Context, email string) error
}
