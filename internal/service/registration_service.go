package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"user-auth-server/internal/apperrors"
	"user-auth-server/internal/model"
	"user-auth-server/internal/model/requestresponse"
	"user-auth-server/internal/ports"
	"user-auth-server/internal/security"
	"user-auth-server/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RegistrationService struct {
	userRepository ports.UserRepository
	roleRepository ports.RoleRepository
	userCache      ports.UserCache
	avatarStorage  ports.AvatarStorage
	validate       *validator.Validate
}

func NewRegistrationService(
	userRepository ports.UserRepository,
	roleRepository ports.RoleRepository,
	userCache ports.UserCache,
	avatarStorage ports.AvatarStorage,
) *RegistrationService {
	return &RegistrationService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		userCache:      userCache,
		avatarStorage:  avatarStorage,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterUser создает нового пользователя.
// Обязательные поля проверяются валидатором, парольная политика — отдельно,
// все нарушения агрегируются в ConflictError и отдаются клиенту дословно
// парами код/описание. Аватар, если он передан, декодируется из base64 и
// сохраняется в хранилище файлов, ссылка кладется в запись пользователя.
func (s *RegistrationService) RegisterUser(ctx context.Context, req *requestresponse.RegisterUserRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return validationConflict(err)
	}

	if err := validatePassword(req.Password); err != nil {
		return err
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return util.LogError("[RegistrationService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		Gender:       req.Gender,
		PasswordHash: hash,
	}

	if strings.TrimSpace(req.UserAvatar) != "" {
		imgBytes, err := base64.StdEncoding.DecodeString(req.UserAvatar)
		if err != nil {
			return apperrors.NewConflictError("InvalidAvatar", "аватар не является корректным base64")
		}

		fileName := fmt.Sprintf("%s_%s_%s.jpeg",
			uuid.New().String(),
			strings.TrimSpace(req.FirstName),
			strings.TrimSpace(req.LastName),
		)

		avatarPath, err := s.avatarStorage.SaveAvatar(ctx, fileName, imgBytes)
		if err != nil {
			return util.LogError("[RegistrationService] не удалось сохранить аватар", err)
		}
		user.UserAvatar = sql.NullString{String: avatarPath, Valid: true}
	}

	if _, err := s.userRepository.CreateUser(ctx, user); err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			return conflict
		}
		return util.LogError("[RegistrationService] ошибка создания пользователя", err)
	}

	return nil
}

// CreateRole создает роль с указанным именем.
// Операция не идемпотентна: дубликат имени отклоняется хранилищем.
func (s *RegistrationService) CreateRole(ctx context.Context, roleName string) error {
	if strings.TrimSpace(roleName) == "" {
		return apperrors.NewConflictError("InvalidRoleName", "имя роли не может быть пустым")
	}

	role := &model.Role{
		UUID: uuid.New().String(),
		Name: roleName,
	}

	if _, err := s.roleRepository.CreateRole(ctx, role); err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			return conflict
		}
		return util.LogError("[RegistrationService] ошибка создания роли", err)
	}

	return nil
}

// AssignRoleToUser назначает роль пользователю, найденному по email.
// Отсутствие пользователя — доменная ошибка ErrUserNotFound, ошибки
// хранилища ролей отдаются без изменений.
func (s *RegistrationService) AssignRoleToUser(ctx context.Context, email, roleName string) error {
	user, err := s.findUserCached(ctx, email)
	if err != nil {
		return err
	}

	role, err := s.roleRepository.FindByName(ctx, roleName)
	if err != nil {
		return err
	}

	return s.roleRepository.AddUserToRole(ctx, user.UUID, role.UUID)
}

// findUserCached ищет пользователя по email через кэш.
// Путь назначения ролей читающий, ему достаточно записи из кэша;
// аутентификация и refresh ходят в БД напрямую.
func (s *RegistrationService) findUserCached(ctx context.Context, email string) (*model.User, error) {
	if s.userCache != nil {
		cached, err := s.userCache.GetUser(ctx, email)
		if err != nil {
			log.Printf("ошибка чтения кэша пользователей: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, util.LogError("[RegistrationService] ошибка поиска пользователя", err)
	}

	if s.userCache != nil {
		if err := s.userCache.SetUser(ctx, user); err != nil {
			log.Printf("не удалось закэшировать пользователя: %v", err)
		}
	}

	return user, nil
}

// validationConflict переводит ошибки валидатора в пары код/описание
func validationConflict(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.NewConflictError("InvalidRequest", err.Error())
	}

	conflict := &apperrors.ConflictError{}
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "email":
			conflict.Errors = append(conflict.Errors, apperrors.FieldError{
				Code:        "InvalidEmail",
				Description: "email имеет неверный формат",
			})
		default:
			conflict.Errors = append(conflict.Errors, apperrors.FieldError{
				Code:        fe.Field() + "Required",
				Description: fmt.Sprintf("поле %s обязательно", fe.Field()),
			})
		}
	}
	return conflict
}

// validatePassword повторяет парольную политику хранилища учетных записей:
// минимум 8 символов, буквы в обоих регистрах, цифра и специальный символ.
// Все нарушения собираются вместе, а не возвращаются по одному.
func validatePassword(password string) error {
	var upperCount, lowerCount, digitCount, specialCount int

	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upperCount++
		case unicode.IsLower(c):
			lowerCount++
		case unicode.IsDigit(c):
			digitCount++
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			specialCount++
		}
	}

	conflict := &apperrors.ConflictError{}
	if len(password) < 8 {
		conflict.Errors = append(conflict.Errors, apperrors.FieldError{
			Code:        "PasswordTooShort",
			Description: "пароль должен содержать минимум 8 символов",
		})
	}
	if upperCount == 0 {
		conflict.Errors = append(conflict.Errors, apperrors.FieldError{
			Code:        "PasswordRequiresUpper",
			Description: "пароль должен содержать заглавную букву",
		})
	}
	if lowerCount == 0 {
		conflict.Errors = append(conflict.Errors, apperrors.FieldError{
			Code:        "PasswordRequiresLower",
			Description: "пароль должен содержать строчную букву",
		})
	}
	if digitCount == 0 {
		conflict.Errors = append(conflict.Errors, apperrors.FieldError{
			Code:        "PasswordRequiresDigit",
			Description: "пароль должен содержать хотя бы одну цифру",
		})
	}
	if specialCount == 0 {
		conflict.Errors = append(conflict.Errors, apperrors.FieldError{
			Code:        "PasswordRequiresNonAlphanumeric",
			Description: "пароль должен содержать хотя бы один специальный символ",
		})
	}

	if len(conflict.Errors) > 0 {
		return conflict
	}
	return nil
}
