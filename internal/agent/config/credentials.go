// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит сессию пользователя (user + access токен) и размещается
// в домашней директории пользователя в файле:
//
//	~/.plantcare/credentials.json
//
// Формат файла — единый блоб {"user":{...},"token":"..."}: ровно то,
// что возвращают /auth/register и /auth/login.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// Credentials содержит сохранённую сессию CLI-клиента.
//
// Token применяется для авторизации запросов к серверу.
// Токен живёт 24 часа; по истечении сервер начнёт отвечать 401
// и нужно логиниться заново.
type Credentials struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// LoggedIn сообщает, есть ли в конфиге сохранённая сессия.
func (c *Credentials) LoggedIn() bool {
	return c != nil && c.Token != ""
}

// DefaultPath возвращает путь к конфигурационному файлу в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.plantcare/credentials.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".plantcare", "credentials.json"), nil
}

// Load загружает конфигурацию из указанного файла.
//
// Если файл не существует, возвращает пустую конфигурацию без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку:
// вызывающая сторона должна удалить файл (эквивалент logout).
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// дефолтный конфиг, если файла нет
			return &Credentials{}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save сохраняет конфигурацию в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл конфигурации записывается с правами 0600.
func Save(path string, c *Credentials) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Clear удаляет файл с сессией (logout).
//
// Отсутствие файла не считается ошибкой.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
