package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aditya-Angaj/plantcare/internal/server/config"
	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantsService реализует бизнес-логику работы с растениями пользователя.
// Сервис:
//   - валидирует входные данные;
//   - применяет лимиты хранения (PlantsConfig);
//   - не знает о HTTP и БД напрямую.
//
// ownerID всегда приходит из проверенного токена, а не из тела запроса,
// поэтому репозиторию достаточно фильтра по owner_id.
type PlantsService struct {
	repo   PlantsRepo
	policy config.PlantsConfig
}

// NewPlantsService создаёт новый PlantsService.
func NewPlantsService(repo PlantsRepo, cfg config.PlantsConfig) *PlantsService {
	return &PlantsService{
		repo:   repo,
		policy: cfg,
	}
}

// checkImage проверяет лимит размера картинки (data-URL может весить мегабайты).
func (s *PlantsService) checkImage(image *string) error {
	if image == nil {
		return nil
	}
	if int64(len(*image)) > s.policy.MaxImageBytes {
		return serr.ErrImageTooLarge
	}
	return nil
}

// checkNotes проверяет лимит размера заметок, если он задан.
func (s *PlantsService) checkNotes(notes *string) error {
	if notes == nil || s.policy.MaxNotesBytes == 0 {
		return nil
	}
	if int64(len(*notes)) > s.policy.MaxNotesBytes {
		return serr.ErrInvalidInput
	}
	return nil
}

// List возвращает все растения пользователя в порядке добавления.
func (s *PlantsService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Plant, error) {
	if ownerID == uuid.Nil {
		return nil, serr.ErrOwnerIDEmpty
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create создаёт новое растение пользователя.
//
// Валидации:
//   - name и species не пустые;
//   - wateringFrequencyDays > 0;
//   - lastWateredAt задан;
//   - health входит в список допустимых статусов;
//   - image и notes не превышают лимитов.
//
// Ошибки:
//   - ErrInvalidInput / ErrBadHealth / ErrImageTooLarge — невалидные данные;
//   - ErrInternal — ошибка хранилища.
func (s *PlantsService) Create(ctx context.Context, ownerID uuid.UUID, req models.CreatePlantRequest) (models.Plant, error) {
	if ownerID == uuid.Nil {
		return models.Plant{}, serr.ErrOwnerIDEmpty
	}

	if req.Name == "" || req.Species == "" {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if req.WateringFrequencyDays <= 0 {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if req.LastWateredAt.IsZero() {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if !req.Health.Valid() {
		return models.Plant{}, serr.ErrBadHealth
	}
	if err := s.checkImage(req.Image); err != nil {
		return models.Plant{}, err
	}
	if err := s.checkNotes(req.Notes); err != nil {
		return models.Plant{}, err
	}

	return s.repo.Create(ctx, ownerID, req)
}

// Update выполняет частичное обновление растения и возвращает свежую запись.
//
// Валидируются только переданные поля. Запрос без единого поля допустим:
// запись просто перечитывается (обновится только updated_at).
//
// Ошибки:
//   - ErrInvalidInput / ErrBadHealth / ErrImageTooLarge — невалидные данные;
//   - ErrPlantNotFound — у пользователя нет растения с таким id;
//   - ErrInternal — ошибка хранилища.
func (s *PlantsService) Update(ctx context.Context, ownerID, plantID uuid.UUID, req models.UpdatePlantRequest) (models.Plant, error) {
	if ownerID == uuid.Nil {
		return models.Plant{}, serr.ErrOwnerIDEmpty
	}
	if plantID == uuid.Nil {
		return models.Plant{}, serr.ErrInvalidInput
	}

	if req.Name != nil && *req.Name == "" {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if req.Species != nil && *req.Species == "" {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if req.WateringFrequencyDays != nil && *req.WateringFrequencyDays <= 0 {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if req.LastWateredAt != nil && req.LastWateredAt.IsZero() {
		return models.Plant{}, serr.ErrInvalidInput
	}
	if req.Health != nil && !req.Health.Valid() {
		return models.Plant{}, serr.ErrBadHealth
	}
	if err := s.checkImage(req.Image); err != nil {
		return models.Plant{}, err
	}
	if err := s.checkNotes(req.Notes); err != nil {
		return models.Plant{}, err
	}

	return s.repo.Update(ctx, ownerID, plantID, req)
}

// Delete удаляет растение пользователя.
//
// Ошибки:
//   - ErrPlantNotFound — у пользователя нет растения с таким id;
//   - ErrInternal — ошибка хранилища.
func (s *PlantsService) Delete(ctx context.Context, ownerID, plantID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return serr.ErrOwnerIDEmpty
	}
	if plantID == uuid.Nil {
		return serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, ownerID, plantID)
}
