package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/model/requestresponse"
	"user-auth-server/internal/ports"
	"user-auth-server/internal/security"
)

type RegistrationHandler struct {
	ports.RegistrationService
}

func NewRegistrationHandler(registrationService ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя. Аватар передается строкой base64 и сохраняется в хранилище файлов. Нарушения парольной политики и дубликат email возвращаются парами "код: описание".
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterUserRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MainResponse
// @Failure 400 {object} requestresponse.MainResponse "Строка ошибок вида 'код: описание'"
// @Router /api/RegisterUser [post]
func (h *RegistrationHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.RegisterUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.RegistrationService.RegisterUser(r.Context(), &req); err != nil {
		log.Println(err)
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(requestresponse.NewErrorResponse(conflict.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(requestresponse.NewErrorResponse("внутренняя ошибка сервера"))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MainResponse{IsSuccess: true})
}

// CreateRole godoc
// @Summary Создание роли
// @Description Создает роль с указанным именем. Дубликаты не сливаются, а отклоняются.
// @Tags Roles
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateRoleRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {string} string "New Role Created"
// @Failure 400 {array} object "Ошибки хранилища вида {code, description}"
// @Security ApiKeyAuth
// @Router /api/CreateRole [post]
func (h *RegistrationHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if claims, ok := security.GetClaimsFromContext(r.Context()); ok {
		log.Printf("пользователь %s создает роль %s", claims.Email, req.RoleName)
	}

	if err := h.RegistrationService.CreateRole(r.Context(), req.RoleName); err != nil {
		log.Println(err)
		sendStoreErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode("New Role Created")
}

// AssignRoleToUser godoc
// @Summary Назначение роли пользователю
// @Description Находит пользователя по email и назначает ему роль. Отсутствие пользователя — отдельное сообщение, ошибки хранилища отдаются без изменений.
// @Tags Roles
// @Accept json
// @Produce json
// @Param body body requestresponse.AssignRoleToUserRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {string} string "Role Assigned to User: <roleName>"
// @Failure 400 {object} requestresponse.MainResponse
// @Security ApiKeyAuth
// @Router /api/AssignRoleToUser [post]
func (h *RegistrationHandler) AssignRoleToUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AssignRoleToUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.RegistrationService.AssignRoleToUser(r.Context(), req.Email, req.RoleName); err != nil {
		log.Println(err)
		if errors.Is(err, apperrors.ErrUserNotFound) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode("There are no user exist with this email")
			return
		}
		sendStoreErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode("Role Assigned to User: " + req.RoleName)
}

// storeError — элемент списка ошибок хранилища в теле 400
type storeError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// sendStoreErrors отдает ошибки хранилища клиенту дословно:
// ConflictError — списком пар {code, description}, остальное — 500
func sendStoreErrors(w http.ResponseWriter, err error) {
	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		payload := make([]storeError, 0, len(conflict.Errors))
		for _, fe := range conflict.Errors {
			payload = append(payload, storeError{Code: fe.Code, Description: fe.Description})
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(payload)
		return
	}

	if errors.Is(err, apperrors.ErrRoleNotFound) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(requestresponse.NewErrorResponse("роль не найдена"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(requestresponse.NewErrorResponse("внутренняя ошибка сервера"))
}

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(requestresponse.NewErrorResponse("invalid request body"))
		return err
	}
	return nil
}
