package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"user-auth-server/config"
	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/model"
	"user-auth-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &config.Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func userColumns() []string {
	return []string{
		"uuid", "email", "first_name", "last_name", "address", "gender",
		"password_hash", "user_avatar", "refresh_token", "created_at",
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "a@x.com", "Ivan", "Petrov", "Moscow", "male",
			"hash", "avatars/u1.jpeg", "refresh-value", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "refresh-value", user.RefreshToken.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindByEmail(context.Background(), "nobody@x.com")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

// Дубликат email (unique_violation) переводится в ConflictError
func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})

	user := &model.User{UUID: "u1", Email: "a@x.com"}
	created, err := repo.CreateUser(context.Background(), user)

	assert.Nil(t, created)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "DuplicateEmail")
}

// Ротация: UPDATE перезаписывает refresh токен пользователя
func TestUserRepository_UpdateRefreshToken(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET refresh_token = $2 WHERE uuid = $1")).
		WithArgs("u1", "new-refresh").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRefreshToken(context.Background(), "u1", "new-refresh")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateRefreshToken_UnknownUser(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET refresh_token = $2 WHERE uuid = $1")).
		WithArgs("ghost", "new-refresh").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRefreshToken(context.Background(), "ghost", "new-refresh")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
