package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Aditya-Angaj/plantcare/internal/server/config"
	"github.com/Aditya-Angaj/plantcare/internal/server/crypto"
	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин)
//   - выпуск access токенов
//
// Токен живёт фиксированные 24 часа (access_ttl), refresh-механизма нет:
// по истечении срока пользователь логинится заново.
type AuthService struct {
	users UsersRepo

	hasher    string
	minLength int
	pass      crypto.Argon2Params
	bcryptCfg config.BcryptConfig
	jwt       crypto.JWTConfig
}

// AuthResult — результат успешной регистрации или логина.
type AuthResult struct {
	UserID uuid.UUID
	Email  string
	Token  string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		hasher:    strings.ToLower(cfg.Password.Hasher),
		minLength: cfg.Password.MinLength,
		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		bcryptCfg: cfg.Password.Bcrypt,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// validateInput — общая проверка формы email/пароля до похода в хранилище.
//
// Требования:
//   - email обязателен и содержит '@'
//   - пароль обязателен и длиной >= password.min_length (6 по умолчанию)
//
// Email не нормализуем: хранится и сравнивается в том регистре,
// в котором его ввёл пользователь.
func (s *AuthService) validateInput(email, password string) error {
	if email == "" || password == "" {
		return serr.ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return serr.ErrInvalidInput
	}
	if len(password) < s.minLength {
		return serr.ErrInvalidInput
	}
	return nil
}

// hashPassword хэширует пароль выбранным в конфиге хэшером.
func (s *AuthService) hashPassword(password string) (string, error) {
	if s.hasher == "bcrypt" {
		return crypto.HashPasswordBcrypt(password, s.bcryptCfg.Cost)
	}
	return crypto.HashPassword(password, s.pass)
}

// Register регистрирует нового пользователя и сразу выдаёт access токен,
// чтобы клиенту не приходилось логиниться отдельным запросом.
//
// Возвращает:
//   - AuthResult с id/email/token
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)

	if err := s.validateInput(email, password); err != nil {
		return AuthResult{}, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	userID, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := crypto.NewAccessToken(userID.String(), email, s.jwt)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	return AuthResult{UserID: userID, Email: email, Token: token}, nil
}

// Login аутентифицирует пользователя и выдаёт access токен.
//
// Поведение:
//   - не раскрывает факт существования email: и для неизвестного email,
//     и для неверного пароля возвращается одинаковый ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)

	if err := s.validateInput(email, password); err != nil {
		return AuthResult{}, err
	}

	// получаем юзера по email
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return AuthResult{}, serr.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}
	if !ok {
		return AuthResult{}, serr.ErrInvalidCredentials
	}

	// выпускаем access токен
	token, err := crypto.NewAccessToken(user.ID.String(), email, s.jwt)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	return AuthResult{UserID: user.ID, Email: email, Token: token}, nil
}
