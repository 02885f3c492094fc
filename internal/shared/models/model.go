// Package models содержит общие wire-модели, используемые HTTP API
// сервера и CLI-клиентом.
package models

import "time"

// Health — качественная оценка состояния растения.
//
// Допустимые значения: Excellent, Good, Fair, Poor.
// Оценка субъективная и не привязана к числовым измерениям.
type Health string

const (
	HealthExcellent Health = "Excellent"
	HealthGood      Health = "Good"
	HealthFair      Health = "Fair"
	HealthPoor      Health = "Poor"
)

// Valid проверяет, что значение входит в список допустимых статусов.
func (h Health) Valid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthPoor:
		return true
	}
	return false
}

// Plant — плоская модель растения, используемая в HTTP API.
//
// Поля:
//   - ID: уникальный идентификатор растения (UUID в виде строки)
//   - Name: имя растения ("Fern", "Monstera на кухне" и т.п.)
//   - Species: вид растения
//   - WateringFrequencyDays: раз в сколько дней поливать (> 0)
//   - LastWateredAt: время последнего полива
//   - Health: оценка состояния (Excellent|Good|Fair|Poor)
//   - Image: опциональная картинка (URI или data-URL, ограничена по размеру)
//   - Notes: опциональные заметки
//   - CreatedAt/UpdatedAt: серверные таймстемпы
//
// JSON-имена полей — camelCase: так их ждёт существующий веб-клиент.
type Plant struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Species               string    `json:"species"`
	WateringFrequencyDays int       `json:"wateringFrequencyDays"`
	LastWateredAt         time.Time `json:"lastWateredAt"`
	Health                Health    `json:"health"`
	Image                 *string   `json:"image,omitempty"`
	Notes                 *string   `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// User — публичное представление пользователя (без хэша пароля).
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse — ответ эндпоинтов /auth/register и /auth/login.
//
// Формат фиксирован контрактом веб-клиента:
//
//	{"user":{"id":"...","email":"..."},"token":"..."}
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CreatePlantRequest — запрос на создание растения.
//
// Используется в:
//
//	POST /plants
//
// Все поля, кроме Image и Notes, обязательны.
type CreatePlantRequest struct {
	Name                  string    `json:"name"`
	Species               string    `json:"species"`
	WateringFrequencyDays int       `json:"wateringFrequencyDays"`
	LastWateredAt         time.Time `json:"lastWateredAt"`
	Health                Health    `json:"health"`
	Image                 *string   `json:"image,omitempty"`
	Notes                 *string   `json:"notes,omitempty"`
}

// UpdatePlantRequest — запрос на частичное обновление растения по ID.
//
// Используется в:
//
//	PUT /plants/{id}
//
// Все поля — указатели, чтобы можно было передавать только изменяемые
// поля (omitempty работает корректно). Непереданные поля не трогаются.
type UpdatePlantRequest struct {
	Name                  *string    `json:"name,omitempty"`
	Species               *string    `json:"species,omitempty"`
	WateringFrequencyDays *int       `json:"wateringFrequencyDays,omitempty"`
	LastWateredAt         *time.Time `json:"lastWateredAt,omitempty"`
	Health                *Health    `json:"health,omitempty"`
	Image                 *string    `json:"image,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
}

// DeletePlantResponse — ответ на удаление растения.
//
// Контракт:
//
//	{"message":"Plant deleted successfully"}
type DeletePlantResponse struct {
	Message string `json:"message"`
}
