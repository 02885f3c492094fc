package memory

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantsDump — формат файла локального кэша растений.
//
// Файл содержит объект вида:
//   { "plants": [ ... ] }
//
// Кэш всего лишь зеркало последнего ответа сервера, он не является
// источником истины и может быть безопасно удалён.
type PlantsDump struct {
	Plants []models.Plant `json:"plants"`
}

// DefaultPlantsPath возвращает путь по умолчанию для локального файла растений.
//
// Путь формируется как:
//
//	$HOME/.plantcare/plants.json
//
// Ошибки:
//   - возвращает ошибку, если не удаётся определить домашнюю директорию пользователя.
func DefaultPlantsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".plantcare", "plants.json"), nil
}

// SaveToFile сериализует текущее состояние store в JSON и сохраняет в файл по пути path.
//
// Поведение:
//   - читает store через List (отсортированный снимок под RLock);
//   - создаёт директорию для файла (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - формат JSON: PlantsDump{Plants:[...]} с отступами (MarshalIndent).
func SaveToFile(path string, store *PlantsStore) error {
	out := PlantsDump{Plants: store.List()}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает растения из JSON-файла в store.
//
// Поведение:
//   - если файл не существует — возвращает nil (нормальная ситуация при первом запуске);
//   - если JSON некорректный — возвращает ошибку Unmarshal;
//   - при успешной загрузке полностью заменяет содержимое store (ReplaceAll semantics).
func LoadFromFile(path string, store *PlantsStore) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump PlantsDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	store.ReplaceAll(dump.Plants)
	return nil
}
