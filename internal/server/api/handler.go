// Package api реализует HTTP-слой сервера plantcare.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, проверка JWT и т.д.).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/Aditya-Angaj/plantcare/internal/server/middleware"
	"github.com/Aditya-Angaj/plantcare/internal/server/service"
	"github.com/Aditya-Angaj/plantcare/internal/shared/logger"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON сериализует v в тело ответа со статусом status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
