// Package memory содержит локальное состояние CLI-клиента:
// потокобезопасный кэш растений, зеркалируемый в JSON-файл.
package memory

import (
	"sort"
	"sync"

	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantsStore — потокобезопасное in-memory хранилище растений.
//
// Используется CLI-клиентом для:
//   - выдачи растения по ID (Get)
//   - получения списка локальных растений (List)
//   - полной замены локального состояния после list (ReplaceAll)
//   - локального обновления по ответу сервера (Upsert)
//   - удаления растения (Delete)
//
// Источник истины — сервер: кэш перезаписывается последним сетевым ответом.
type PlantsStore struct {
	mu     sync.RWMutex
	plants map[string]models.Plant
}

// NewPlants создаёт пустое хранилище растений.
func NewPlants() *PlantsStore {
	return &PlantsStore{
		plants: make(map[string]models.Plant),
	}
}

// Get возвращает растение по ID.
//
// Если растение отсутствует — возвращает serr.ErrPlantNotFound.
func (s *PlantsStore) Get(id string) (models.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.plants[id]
	if !ok {
		return models.Plant{}, serr.ErrPlantNotFound
	}
	return result, nil
}

// ReplaceAll полностью заменяет содержимое стора переданным списком.
//
// Используется после GET /plants, чтобы локальное состояние строго
// соответствовало серверу.
func (s *PlantsStore) ReplaceAll(plants []models.Plant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plants = make(map[string]models.Plant, len(plants))
	for _, p := range plants {
		s.plants[p.ID] = p
	}
}

// List возвращает список всех растений в порядке добавления
// (по CreatedAt, затем по ID — как отдаёт сервер).
func (s *PlantsStore) List() []models.Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Plant, 0, len(s.plants))
	for _, p := range s.plants {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Upsert кладёт в стор запись, полученную от сервера
// (ответ POST /plants или PUT /plants/{id}).
func (s *PlantsStore) Upsert(p models.Plant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plants[p.ID] = p
}

// Delete удаляет растение по ID.
//
// Если растение отсутствует — возвращает serr.ErrPlantNotFound.
func (s *PlantsStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plants[id]; !ok {
		return serr.ErrPlantNotFound
	}
	delete(s.plants, id)
	return nil
}
