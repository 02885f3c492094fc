// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Aditya-Angaj/plantcare/internal/server/crypto"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// userEmailKey — ключ контекста, под которым хранится email из токена.
const userEmailKey ctxKey = "user_email"

// JWTVerifier инкапсулирует параметры проверки JWT access-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена
//   - валидации issuer и audience
//   - извлечения userID (claims.Subject) и email
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok
}

// UserEmailFromContext извлекает email аутентифицированного пользователя из контекста.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userEmailKey)
	s, ok := v.(string)
	return s, ok
}

// writeUnauthorized отвечает 401 в том же JSON-формате {"error":"..."},
// что и остальные ошибки API.
func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена (в том числе exp)
//   - извлекает userID из claims.Subject и email из кастомного клейма
//   - сохраняет их в context.Context
//
// Отсутствующий, просроченный и некорректный токены неразличимы для клиента:
// во всех случаях возвращается HTTP 401 Unauthorized.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims := &crypto.AccessClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					writeUnauthorized(w, "token expired")
					return
				}
				writeUnauthorized(w, "invalid token")
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				writeUnauthorized(w, "invalid token issuer")
				return
			}

			if v.Audience != "" {
				ok := false
				for _, aud := range claims.Audience {
					if aud == v.Audience {
						ok = true
						break
					}
				}
				if !ok {
					writeUnauthorized(w, "invalid token audience")
					return
				}
			}

			userID := strings.TrimSpace(claims.Subject)
			if userID == "" {
				writeUnauthorized(w, "invalid token subject")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
