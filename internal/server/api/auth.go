// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// Успешная регистрация сразу возвращает токен — отдельный логин не нужен.
//
// Ответы:
//   - 200 OK: {"user":{"id","email"},"token"};
//   - 400 Bad Request: неверный JSON, невалидные входные данные или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Errorw("register failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.AuthResponse{
		User:  models.User{ID: res.UserID.String(), Email: res.Email},
		Token: res.Token,
	})
}

// Login обрабатывает вход пользователя и выдачу токена.
//
// Ответы:
//   - 200 OK: {"user":{"id","email"},"token"};
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные (единый ответ);
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Errorw("login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.AuthResponse{
		User:  models.User{ID: res.UserID.String(), Email: res.Email},
		Token: res.Token,
	})
}
