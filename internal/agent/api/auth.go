// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

import "github.com/Aditya-Angaj/plantcare/internal/shared/models"

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register регистрирует нового пользователя.
//
// Сервер сразу возвращает сессию {user, token}, отдельный
// логин после регистрации не нужен.
func (c *Client) Register(email, password string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.PostJSON("/auth/register", RegisterRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и возвращает сессию {user, token}.
func (c *Client) Login(email, password string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.PostJSON("/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}
