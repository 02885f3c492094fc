// Package http реализует маршрутизацию HTTP-слоя сервера plantcare.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - проверку JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Aditya-Angaj/plantcare/internal/server/api"
	"github.com/Aditya-Angaj/plantcare/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов /plants.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для растений
		r.Route("/plants", func(r chi.Router) {
			r.Get("/", h.ListPlants)          // список растений пользователя
			r.Post("/", h.CreatePlant)        // создание растения
			r.Put("/{id}", h.UpdatePlant)     // частичное обновление по id
			r.Delete("/{id}", h.DeletePlant)  // удаление по id
		})
	})

	return r
}
