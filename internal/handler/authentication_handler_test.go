package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-auth-server/config"
	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/handler"
	"user-auth-server/internal/model"
	"user-auth-server/internal/security"
	"user-auth-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

// fakeUserRepository — хранилище пользователей в памяти вместо Postgres
type fakeUserRepository struct {
	users map[string]*model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*model.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return nil, apperrors.NewConflictError("DuplicateEmail", "пользователь с таким email уже существует")
	}
	stored := *user
	f.users[user.Email] = &stored
	return &stored, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.FindByEmail(ctx, username)
}

func (f *fakeUserRepository) UpdateRefreshToken(_ context.Context, userUUID string, refreshToken string) error {
	for _, user := range f.users {
		if user.UUID == userUUID {
			user.RefreshToken.String = refreshToken
			user.RefreshToken.Valid = true
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, _ *model.User) error {
	return nil
}

// fakeRoleRepository — хранилище ролей в памяти
type fakeRoleRepository struct {
	roles map[string]*model.Role
}

func newFakeRoleRepository() *fakeRoleRepository {
	return &fakeRoleRepository{roles: make(map[string]*model.Role)}
}

func (f *fakeRoleRepository) CreateRole(_ context.Context, role *model.Role) (*model.Role, error) {
	if _, exists := f.roles[role.Name]; exists {
		return nil, apperrors.NewConflictError("DuplicateRoleName", "роль с таким именем уже существует")
	}
	f.roles[role.Name] = role
	return role, nil
}

func (f *fakeRoleRepository) FindByName(_ context.Context, name string) (*model.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	return role, nil
}

func (f *fakeRoleRepository) AddUserToRole(_ context.Context, _ string, _ string) error {
	return nil
}

// ===== SETUP =====

func newTestServer(t *testing.T, accessTokenTTL string) *httptest.Server {
	jwtService := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "test-secret-key",
		Issuer:         "user-auth-server",
		Audience:       "user-auth-clients",
		AccessTokenTTL: accessTokenTTL,
	})

	userRepo := newFakeUserRepository()
	roleRepo := newFakeRoleRepository()

	avatarStorage, err := service.NewLocalAvatarStorage(t.TempDir())
	require.NoError(t, err)

	authService := service.NewAuthenticationService(userRepo, jwtService, nil)
	registrationService := service.NewRegistrationService(userRepo, roleRepo, nil, avatarStorage)

	authHandler := handler.NewAuthenticationHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Post("/RegisterUser", registrationHandler.RegisterUser)
		r.Post("/AuthenticateUser", authHandler.AuthenticateUser)
		r.Post("/RefreshToken", authHandler.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Post("/CreateRole", registrationHandler.CreateRole)
			r.Post("/AssignRoleToUser", registrationHandler.AssignRoleToUser)
		})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}, headers map[string]string) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

type envelope struct {
	IsSuccess    bool    `json:"isSuccess"`
	ErrorMessage *string `json:"errorMessage"`
	Content      struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"content"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func registerBody() map[string]string {
	return map[string]string{
		"email":     "a@x.com",
		"firstName": "Ivan",
		"lastName":  "Petrov",
		"password":  "P@ss1234",
		"address":   "Moscow",
		"gender":    "male",
	}
}

// ===== TESTS =====

// Сквозной сценарий: регистрация → аутентификация → refresh →
// повтор исходной пары отклоняется
func TestEndToEnd_RegisterAuthenticateRefresh(t *testing.T) {
	srv := newTestServer(t, "1h")

	// регистрация
	resp := postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.IsSuccess)

	// аутентификация
	resp = postJSON(t, srv.URL+"/api/AuthenticateUser", map[string]string{
		"userName": "a@x.com",
		"password": "P@ss1234",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	require.True(t, env.IsSuccess)
	require.NotEmpty(t, env.Content.AccessToken)
	require.NotEmpty(t, env.Content.RefreshToken)

	firstAccess := env.Content.AccessToken
	firstRefresh := env.Content.RefreshToken

	// обмен пары: refresh токен должен смениться
	resp = postJSON(t, srv.URL+"/api/RefreshToken", map[string]string{
		"accessToken":  firstAccess,
		"refreshToken": firstRefresh,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	require.True(t, env.IsSuccess)
	assert.NotEqual(t, firstRefresh, env.Content.RefreshToken)

	// исходная пара одноразовая: повтор отклоняется
	resp = postJSON(t, srv.URL+"/api/RefreshToken", map[string]string{
		"accessToken":  firstAccess,
		"refreshToken": firstRefresh,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	assert.False(t, env.IsSuccess)
	require.NotNil(t, env.ErrorMessage)
}

// Повторный вход инвалидирует ранее выданный refresh токен
func TestAuthenticate_OverwritesRefreshToken(t *testing.T) {
	srv := newTestServer(t, "1h")

	resp := postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	login := func() envelope {
		resp := postJSON(t, srv.URL+"/api/AuthenticateUser", map[string]string{
			"userName": "a@x.com",
			"password": "P@ss1234",
		}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decodeEnvelope(t, resp)
	}

	first := login()
	second := login()
	assert.NotEqual(t, first.Content.RefreshToken, second.Content.RefreshToken)

	// пара первого входа больше не принимается
	resp = postJSON(t, srv.URL+"/api/RefreshToken", map[string]string{
		"accessToken":  first.Content.AccessToken,
		"refreshToken": first.Content.RefreshToken,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Истекший access токен остается пригодным для refresh
func TestRefreshToken_WithExpiredAccessToken(t *testing.T) {
	srv := newTestServer(t, "-1s")

	resp := postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/AuthenticateUser", map[string]string{
		"userName": "a@x.com",
		"password": "P@ss1234",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)

	resp = postJSON(t, srv.URL+"/api/RefreshToken", map[string]string{
		"accessToken":  env.Content.AccessToken,
		"refreshToken": env.Content.RefreshToken,
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Неверный пароль — 401 без тела
func TestAuthenticateUser_Unauthorized(t *testing.T) {
	srv := newTestServer(t, "1h")

	resp := postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/AuthenticateUser", map[string]string{
		"userName": "a@x.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), resp.ContentLength)
}

// Дубликат email — 400 со строкой "код: описание"
func TestRegisterUser_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t, "1h")

	resp := postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.ErrorMessage)
	assert.Contains(t, *env.ErrorMessage, "DuplicateEmail:")
}

// Ролевые ручки закрыты JWT middleware
func TestRoleEndpoints_RequireAuthorization(t *testing.T) {
	srv := newTestServer(t, "1h")

	resp := postJSON(t, srv.URL+"/api/CreateRole", map[string]string{"roleName": "Administrator"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateRoleAndAssign(t *testing.T) {
	srv := newTestServer(t, "1h")

	resp := postJSON(t, srv.URL+"/api/RegisterUser", registerBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/AuthenticateUser", map[string]string{
		"userName": "a@x.com",
		"password": "P@ss1234",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)

	authHeader := map[string]string{"Authorization": "Bearer " + env.Content.AccessToken}

	resp = postJSON(t, srv.URL+"/api/CreateRole", map[string]string{"roleName": "Administrator"}, authHeader)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// назначение роли существующему пользователю
	resp = postJSON(t, srv.URL+"/api/AssignRoleToUser", map[string]string{
		"email":    "a@x.com",
		"roleName": "Administrator",
	}, authHeader)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var confirmation string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&confirmation))
	assert.Equal(t, "Role Assigned to User: Administrator", confirmation)

	// неизвестный email — отдельное сообщение, не ошибка хранилища
	resp = postJSON(t, srv.URL+"/api/AssignRoleToUser", map[string]string{
		"email":    "nobody@x.com",
		"roleName": "Administrator",
	}, authHeader)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var message string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&message))
	assert.Equal(t, "There are no user exist with this email", message)
}
