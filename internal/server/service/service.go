// Package service содержит бизнес-логику приложения (plantcare).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aditya-Angaj/plantcare/internal/server/config"
	srvmodels "github.com/Aditya-Angaj/plantcare/internal/server/models"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Plants PlantsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth   *AuthService
	Plants *PlantsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (хэширование пароля, параметры JWT)
// и PlantsService (лимиты на записи).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:   NewAuthService(repos.Users, cfg),
		Plants: NewPlantsService(repos.Plants, cfg.Plants),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (srvmodels.User, error)
}

// PlantsRepo — репозиторий растений (owner-scoped CRUD).
type PlantsRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, req models.CreatePlantRequest) (models.Plant, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Plant, error)
	Update(ctx context.Context, ownerID, plantID uuid.UUID, req models.UpdatePlantRequest) (models.Plant, error)
	Delete(ctx context.Context, ownerID, plantID uuid.UUID) error
}
