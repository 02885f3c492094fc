package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Aditya-Angaj/plantcare/internal/server/crypto"
	"github.com/Aditya-Angaj/plantcare/internal/server/middleware"
)

const signingKey = "supersecretkeysupersecretkey123456"

func newVerifier() *middleware.JWTVerifier {
	return middleware.NewJWTVerifier(signingKey, "issuer", "audience")
}

func issueToken(t *testing.T, userID, email string, ttl time.Duration) string {
	t.Helper()

	token, err := crypto.NewAccessToken(userID, email, crypto.JWTConfig{
		Issuer:     "issuer",
		Audience:   "audience",
		SigningKey: signingKey,
		AccessTTL:  ttl,
	})
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	return token
}

// Валидный токен: запрос проходит, в контексте userID и email
func TestAuthMiddleware_OK(t *testing.T) {
	t.Parallel()

	v := newVerifier()
	userID := uuid.New().String()
	token := issueToken(t, userID, "test@example.com", time.Minute)

	var gotUserID, gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = middleware.UserIDFromContext(r.Context())
		gotEmail, _ = middleware.UserEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
	if gotUserID != userID {
		t.Fatalf("expected userID %q in context, got %q", userID, gotUserID)
	}
	if gotEmail != "test@example.com" {
		t.Fatalf("expected email in context, got %q", gotEmail)
	}
}

// Нет заголовка Authorization
func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	v := newVerifier()

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// 401 отдаётся в том же JSON-формате {"error":"..."}, что и остальные ошибки API
func TestAuthMiddleware_UnauthorizedBodyIsJSON(t *testing.T) {
	t.Parallel()

	v := newVerifier()

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON body, decode failed: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected non-empty error field")
	}
}

// Мусор вместо токена
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	v := newVerifier()

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// Просроченный токен
func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	v := newVerifier()
	token := issueToken(t, uuid.New().String(), "test@example.com", -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// Чужой issuer
func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	t.Parallel()

	v := newVerifier()

	token, err := crypto.NewAccessToken(uuid.New().String(), "test@example.com", crypto.JWTConfig{
		Issuer:     "someone-else",
		Audience:   "audience",
		SigningKey: signingKey,
		AccessTTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// ExtractBearer: допустимые и недопустимые форматы
func TestExtractBearer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Bearer token123", "token123"},
		{"bearer token123", "token123"},
		{"Bearer  token123", "token123"},
		{"token123", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := middleware.ExtractBearer(c.in); got != c.want {
			t.Fatalf("ExtractBearer(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
