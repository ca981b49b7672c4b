package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"user-auth-server/internal/model/requestresponse"
	"user-auth-server/internal/ports"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// AuthenticateUser godoc
// @Summary Аутентификация пользователя
// @Description Получение пары access/refresh токенов по имени пользователя и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.AuthenticateUserRequest true "Тело запроса" example({"userName": "user@example.com", "password": "P@ss1234"})
// @Success 200 {object} requestresponse.MainResponse "Успешная аутентификация"
// @Failure 401 "Неверный логин или пароль, тело не возвращается"
// @Router /api/AuthenticateUser [post]
func (h *AuthenticationHandler) AuthenticateUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.AuthenticateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	tokens, err := h.AuthenticationService.Authenticate(r.Context(), req.UserName, req.Password)
	if err != nil {
		// Детали не раскрываются: любой отказ аутентификации — это 401 без тела
		log.Println(err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.NewSuccessResponse(tokens))
}

// RefreshToken godoc
// @Summary Обновление пары токенов
// @Description Обменивает истекший access токен и действующий refresh токен на новую пару. Refresh токен одноразовый: успешный обмен делает предыдущий недействительным.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MainResponse "Новая пара токенов"
// @Failure 400 {object} requestresponse.MainResponse "Невалидный запрос или токены"
// @Router /api/RefreshToken [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(requestresponse.NewErrorResponse("Invalid request"))
		return
	}

	tokens, err := h.AuthenticationService.RefreshToken(r.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(requestresponse.NewErrorResponse("Invalid request"))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.NewSuccessResponse(tokens))
}
