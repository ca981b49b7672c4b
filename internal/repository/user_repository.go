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

// Код unique_violation в Postgres
const pqUniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя.
// Дубликат email отдается как ConflictError с парой код/описание,
// чтобы хендлер мог вернуть ее клиенту дословно.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, first_name, last_name, address, gender, password_hash, user_avatar)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING uuid, email, first_name, last_name, address, gender, password_hash, user_avatar, refresh_token, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Address,
		user.Gender,
		user.PasswordHash,
		user.UserAvatar,
	).StructScan(createdUser)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, apperrors.NewConflictError("DuplicateEmail", "пользователь с таким email уже существует")
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
	SELECT uuid, email, first_name, last_name, address, gender, password_hash, user_avatar, refresh_token, created_at
	FROM users WHERE email = $1
	`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// FindByUsername : ищет пользователя по имени входа.
// Email используется и как username, отдельной колонки нет.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.FindByEmail(ctx, username)
}

// UpdateRefreshToken : перезаписывает refresh токен пользователя.
// Это шаг ротации: предыдущий токен после перезаписи недействителен,
// истории не ведется.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userUUID string, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $2 WHERE uuid = $1`

	result, err := r.DB.ExecContext(ctx, query, userUUID, refreshToken)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить, обновлен ли refresh токен", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateUser : обновляет профильные поля пользователя
func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	query := `
	UPDATE users
	SET first_name = $2, last_name = $3, address = $4, gender = $5, user_avatar = $6
	WHERE uuid = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		user.UUID,
		user.FirstName,
		user.LastName,
		user.Address,
		user.Gender,
		user.UserAvatar,
	)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пользователя", err)
	}
	return nil
}
