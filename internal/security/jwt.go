package security

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"
	"strings"
	"time"

	"user-auth-server/config"
	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/model"
	"user-auth-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Claims struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserAvatar string `json:"user_avatar,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateAccessToken подписывает короткоживущий access токен с claims
// {subject, name, email, user_avatar}. Ключ, issuer и audience берутся из
// конфигурации и после старта не меняются.
func (service *JWTService) GenerateAccessToken(user *model.User) (string, error) {
	timeDuration, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return "", util.LogError("ошибка парсинга access_token_ttl", err)
	}

	claims := Claims{
		Name:       user.FullName(),
		Email:      user.Email,
		UserAvatar: user.UserAvatar.String,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID,
			Issuer:    service.Issuer,
			Audience:  jwt.ClaimStrings{service.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return accessToken, nil
}

// GenerateRefreshToken возвращает непрозрачный refresh токен: 32 случайных
// байта в base64. Сохранение токена за пользователем — обязанность вызывающего.
func GenerateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 32)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", util.LogError("ошибка генерации refresh токена", err)
	}

	return base64.StdEncoding.EncodeToString(tokenBytes), nil
}

// ValidateJWT выполняет полную проверку access токена:
// подпись, срок жизни, issuer и audience.
func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, service.keyFunc,
		jwt.WithIssuer(service.Issuer),
		jwt.WithAudience(service.Audience),
	)

	if err != nil || jwtToken.Valid == false {
		log.Printf("невалидный токен: %v", err)
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// ValidateExpiredToken проверяет только подпись access токена: срок жизни,
// issuer и audience намеренно пропускаются, потому что единственная цель —
// восстановить identity из уже истекшего токена для выдачи нового.
// После разбора алгоритм из заголовка сверяется с HS256 без учета регистра,
// чтобы отклонить токен, подделанный под другой алгоритм.
func (service *JWTService) ValidateExpiredToken(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, service.keyFunc,
		jwt.WithoutClaimsValidation(),
	)

	if err != nil || jwtToken.Valid == false {
		log.Printf("невалидный токен: %v", err)
		return nil, apperrors.ErrInvalidToken
	}

	alg, _ := jwtToken.Header["alg"].(string)
	if !strings.EqualFold(alg, jwt.SigningMethodHS256.Alg()) {
		log.Printf("неверный способ подписи токена: %v", alg)
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (service *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	return []byte(service.SecretKey), nil
}

func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := jwtService.ValidateJWT(token)
			if err != nil {
				log.Printf("невалидный токен: %v", err)
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
