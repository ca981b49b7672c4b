package ports

import (
	"context"

	"user-auth-server/internal/model"
)

type RoleRepository interface {
	CreateRole(ctx context.Context, role *model.Role) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	AddUserToRole(ctx context.Context, userUUID string, roleUUID string) error
}
