package repository

import (
	"context"
	"database/sql"
	"errors"

	"user-auth-server/config"
	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/model"
	"user-auth-server/internal/util"

	"github.com/lib/pq"
)

type RoleRepository struct {
	*config.Database
}

func NewRoleRepository(database *config.Database) *RoleRepository {
	return &RoleRepository{database}
}

// CreateRole : сохраняет новую роль.
// Дубликаты имен не сливаются, а отклоняются с ConflictError.
func (r *RoleRepository) CreateRole(ctx context.Context, role *model.Role) (*model.Role, error) {
	query := `
	INSERT INTO roles (uuid, name)
	VALUES ($1, $2)
	RETURNING uuid, name, created_at
	`

	createdRole := &model.Role{}
	err := r.DB.QueryRowxContext(ctx, query, role.UUID, role.Name).StructScan(createdRole)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, apperrors.NewConflictError("DuplicateRoleName", "роль с таким именем уже существует")
		}
		return nil, util.LogError("[RoleRepo] ошибка вставки данных в БД", err)
	}

	return createdRole, nil
}

// FindByName : ищет роль по имени
func (r *RoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	query := `SELECT uuid, name, created_at FROM roles WHERE name = $1`

	var role model.Role
	err := r.DB.GetContext(ctx, &role, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, util.LogError("[RoleRepo] не удалось найти роль по имени", err)
	}
	return &role, nil
}

// AddUserToRole : связывает пользователя с ролью (many-to-many)
func (r *RoleRepository) AddUserToRole(ctx context.Context, userUUID string, roleUUID string) error {
	query := `INSERT INTO user_roles (user_uuid, role_uuid) VALUES ($1, $2)`

	_, err := r.DB.ExecContext(ctx, query, userUUID, roleUUID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return apperrors.NewConflictError("UserAlreadyInRole", "роль уже назначена пользователю")
		}
		return util.LogError("[RoleRepo] не удалось назначить роль пользователю", err)
	}
	return nil
}
