package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrRoleNotFound = errors.New("роль не найдена")

	// ErrInvalidCredentials — неверный логин или пароль, наружу отдается только 401
	ErrInvalidCredentials = errors.New("неверный логин или пароль")

	// ErrInvalidToken — подпись или алгоритм access токена не прошли проверку
	ErrInvalidToken = errors.New("невалидный токен")

	// ErrRefreshTokenMismatch — предъявленный refresh токен не совпадает с сохраненным
	ErrRefreshTokenMismatch = errors.New("refresh токен не совпадает с сохраненным")
)

// FieldError — пара код/описание в стиле ошибок хранилища (дубликат email,
// нарушение парольной политики и т.п.)
type FieldError struct {
	Code        string
	Description string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// ConflictError агрегирует ошибки создания записи и отдается клиенту дословно
type ConflictError struct {
	Errors []FieldError
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, ", ")
}

func NewConflictError(code, description string) *ConflictError {
	return &ConflictError{Errors: []FieldError{{Code: code, Description: description}}}
}
