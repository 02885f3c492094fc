package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Aditya-Angaj/plantcare/internal/server/api"
	"github.com/Aditya-Angaj/plantcare/internal/server/config"
	"github.com/Aditya-Angaj/plantcare/internal/server/crypto"
	"github.com/Aditya-Angaj/plantcare/internal/server/middleware"
	srvmodels "github.com/Aditya-Angaj/plantcare/internal/server/models"
	"github.com/Aditya-Angaj/plantcare/internal/server/service"
	svcmocks "github.com/Aditya-Angaj/plantcare/internal/server/service/mocks"
	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
	"github.com/Aditya-Angaj/plantcare/internal/shared/logger"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// NewTestHandler создаёт Handler с моками и конфигом через dependency injection
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockPlantsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	plants := svcmocks.NewMockPlantsRepo(ctrl)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "issuer",
			Audience:  "audience",
			AccessTTL: 24 * time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher:    "argon2id",
			MinLength: 6,
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 64 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
		Plants: config.PlantsConfig{
			MaxImageBytes: 5 << 20,
		},
	}

	svc := service.NewServices(service.Repositories{Users: users, Plants: plants}, cfg)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), users, plants
}

func TestHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected error body, got empty")
	}
}

func TestHandler_Register_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "StrongPass123"
	userID := uuid.New()

	users.EXPECT().
		Create(gomock.Any(), email, gomock.Any()).
		DoAndReturn(func(ctx context.Context, gotEmail, gotHash string) (uuid.UUID, error) {
			if gotEmail != email {
				t.Fatalf("expected email %q, got %q", email, gotEmail)
			}
			if gotHash == "" {
				t.Fatalf("expected non-empty password hash")
			}
			return userID, nil
		})

	body, _ := json.Marshal(api.RegisterRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp models.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != userID.String() {
		t.Fatalf("expected user id %q, got %q", userID.String(), resp.User.ID)
	}
	if resp.User.Email != email {
		t.Fatalf("expected email %q, got %q", email, resp.User.Email)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token")
	}
}

// Дубликат email отдаётся как 400, не 409
func TestHandler_Register_AlreadyExists(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "StrongPass123"

	users.EXPECT().
		Create(gomock.Any(), email, gomock.Any()).
		Return(uuid.Nil, serr.ErrAlreadyExists)

	body, _ := json.Marshal(api.RegisterRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != serr.ErrAlreadyExists.Error() {
		t.Fatalf("expected %q, got %q", serr.ErrAlreadyExists.Error(), resp.Error)
	}
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.RegisterRequest{Email: "test@example.com", Password: "12345"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_Login_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_Login_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "StrongPass123"
	userID := uuid.New()

	hash, err := crypto.HashPassword(password, crypto.Argon2Params{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	users.EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(srvmodels.User{ID: userID, Email: email, PasswordHash: hash}, nil)

	body, _ := json.Marshal(api.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp models.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token, got %+v", resp)
	}
	if resp.User.Email != email {
		t.Fatalf("expected email %q, got %q", email, resp.User.Email)
	}
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "WrongPass123"

	users.EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(srvmodels.User{}, serr.ErrNotFound)

	body, _ := json.Marshal(api.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// Неожиданная ошибка логина: 500 клиенту, причина в серверный лог
func TestHandler_Login_InternalError_LogsCause(t *testing.T) {
	// НЕ параллелим: путь к лог-файлу общий
	logPath := filepath.Join("runtime", "logs", "plantcare.log")
	os.Remove(logPath)

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"

	users.EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(srvmodels.User{}, serr.ErrInternal)

	body, _ := json.Marshal(api.LoginRequest{Email: email, Password: "StrongPass123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)
	h.Log.Sync()

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "login failed") {
		t.Fatalf("expected log to contain the failure message, got: %q", s)
	}
	// в лог попадает и сама причина
	if !strings.Contains(s, serr.ErrInternal.Error()) {
		t.Fatalf("expected log to contain the underlying error, got: %q", s)
	}

	os.Remove(logPath)
}

// Неожиданная ошибка регистрации: причина тоже логируется
func TestHandler_Register_InternalError_LogsCause(t *testing.T) {
	logPath := filepath.Join("runtime", "logs", "plantcare.log")
	os.Remove(logPath)

	h, users, _ := NewTestHandler(t)

	users.EXPECT().
		Create(gomock.Any(), "test@example.com", gomock.Any()).
		Return(uuid.Nil, serr.ErrInternal)

	body, _ := json.Marshal(api.RegisterRequest{Email: "test@example.com", Password: "StrongPass123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)
	h.Log.Sync()

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "register failed") || !strings.Contains(s, serr.ErrInternal.Error()) {
		t.Fatalf("expected failure message and underlying error in log, got: %q", s)
	}

	os.Remove(logPath)
}
