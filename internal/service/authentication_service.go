package service

import (
	"context"
	"log"

	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/model"
	"user-auth-server/internal/ports"
	"user-auth-server/internal/security"
	"user-auth-server/internal/util"
)

type AuthenticationService struct {
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
	userCache      ports.UserCache
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
	userCache ports.UserCache,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		jwtService:     jwtService,
		userCache:      userCache,
	}
}

// Authenticate проверяет учетные данные и выдает новую пару токенов.
// Успешный вход перезаписывает сохраненный refresh токен, так что ранее
// выданный refresh токен перестает приниматься и без явного refresh.
// Наружу при любой ошибке учетных данных уходит только ErrInvalidCredentials.
func (s *AuthenticationService) Authenticate(ctx context.Context, userName, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByUsername(ctx, userName)
	if err != nil {
		log.Printf("пользователь %s не найден: %v", userName, err)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken обменивает истекший access токен и действующий refresh токен
// на новую пару. Протокол:
//  1. Проверяется только подпись access токена (срок жизни намеренно
//     игнорируется), из claims восстанавливается email.
//  2. Пользователь ищется по email напрямую в БД, мимо кэша — сравнение
//     refresh токенов должно идти со свежим значением.
//  3. Предъявленный refresh токен сравнивается с сохраненным строго по
//     строковому равенству. Уже использованный токен не совпадет и будет
//     отклонен: ротация делает каждый refresh токен одноразовым.
//  4. Новый refresh токен безусловно перезаписывает старый.
//
// Гонка двух одновременных refresh на одного пользователя не закрывается,
// побеждает последняя запись (семантика хранилища).
func (s *AuthenticationService) RefreshToken(ctx context.Context, accessToken, refreshToken string) (*model.TokensPair, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, apperrors.ErrInvalidToken
	}

	claims, err := s.jwtService.ValidateExpiredToken(accessToken)
	if err != nil {
		return nil, err
	}

	if claims.Email == "" {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepository.FindByEmail(ctx, claims.Email)
	if err != nil {
		log.Printf("пользователь из claims не найден: %v", err)
		return nil, apperrors.ErrUserNotFound
	}

	if !user.RefreshToken.Valid || user.RefreshToken.String != refreshToken {
		log.Printf("refresh токен пользователя %s не совпадает с сохраненным", user.UUID)
		return nil, apperrors.ErrRefreshTokenMismatch
	}

	return s.issueTokens(ctx, user)
}

// issueTokens генерирует пару токенов и сохраняет новый refresh токен.
// Кэш инвалидируется до записи, чтобы следующий запрос не прочитал
// устаревшую запись пользователя.
func (s *AuthenticationService) issueTokens(ctx context.Context, user *model.User) (*model.TokensPair, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, util.LogError("ошибка генерации access токена", err)
	}

	refreshToken, err := security.GenerateRefreshToken()
	if err != nil {
		return nil, util.LogError("ошибка генерации refresh токена", err)
	}

	if s.userCache != nil {
		if err := s.userCache.DeleteUser(ctx, user.Email); err != nil {
			log.Printf("не удалось инвалидировать кэш пользователя: %v", err)
		}
	}

	if err := s.userRepository.UpdateRefreshToken(ctx, user.UUID, refreshToken); err != nil {
		return nil, util.LogError("ошибка сохранения refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
