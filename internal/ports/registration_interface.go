package ports

import (
	"context"

	"user-auth-server/internal/model/requestresponse"
)

type RegistrationService interface {
	RegisterUser(ctx context.Context, req *requestresponse.RegisterUserRequest) error
	CreateRole(ctx context.Context, roleName string) error
	AssignRoleToUser(ctx context.Context, email, roleName string) error
}
