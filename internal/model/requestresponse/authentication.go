package requestresponse

import "user-auth-server/internal/model"

// MainResponse : общий конверт ответа API
// swagger:model
type MainResponse struct {
	IsSuccess    bool        `json:"isSuccess"`
	ErrorMessage *string     `json:"errorMessage"`
	Content      interface{} `json:"content"`
}

// AuthenticateUserRequest : тело запроса на аутентификацию
type AuthenticateUserRequest struct {
	UserName string `json:"userName" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// RefreshTokenRequest : запрос на обновление пары токенов
type RefreshTokenRequest struct {
	AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
}

// NewSuccessResponse собирает успешный конверт с парой токенов
func NewSuccessResponse(tokens *model.TokensPair) MainResponse {
	return MainResponse{
		IsSuccess: true,
		Content:   tokens,
	}
}

// NewErrorResponse собирает конверт с сообщением об ошибке.
// В исходной системе конверт ошибки помечался isSuccess=true — здесь это
// исправлено, флаг ставится в false.
func NewErrorResponse(message string) MainResponse {
	return MainResponse{
		IsSuccess:    false,
		ErrorMessage: &message,
	}
}
