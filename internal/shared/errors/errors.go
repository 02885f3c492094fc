// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (единый текст: не палим существование email)
	ErrInvalidCredentials = errors.New("invalid email or password")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("an unexpected error occurred")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (email уже занят)
	ErrAlreadyExists = errors.New("email is already registered")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для растений
var (
	// plants
	ErrPlantNotFound = errors.New("plant not found")
	ErrImageTooLarge = errors.New("image too large")
	ErrBadHealth     = errors.New("unknown health status")
	ErrOwnerIDEmpty  = errors.New("owner id cannot be empty")
)
