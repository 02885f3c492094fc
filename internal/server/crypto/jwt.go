// Package crypto содержит криптографические примитивы,
// используемые сервером plantcare.
//
// В частности, пакет отвечает за:
//   - генерацию и подпись JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL);
//   - соблюдение требований безопасности (HS256, срок жизни).
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена (абсолютный, 24h по умолчанию).
	// Refresh-механизма нет: по истечении пользователь логинится заново.
	AccessTTL time.Duration
}

// AccessClaims — клеймы access-токена.
//
// Кроме стандартных RegisteredClaims токен несёт email пользователя:
// клиенту он нужен для отображения, серверу — чтобы не ходить в БД
// на каждый запрос.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - email
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(userID, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
