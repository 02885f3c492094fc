package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantsRepository реализует доступ к хранилищу растений (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Каждый запрос фильтруется по owner_id: чужая запись для репозитория
// неотличима от несуществующей.
type PlantsRepository struct {
	db *sql.DB
}

// NewPlantsRepository создаёт новый экземпляр PlantsRepository.
func NewPlantsRepository(db *sql.DB) *PlantsRepository {
	return &PlantsRepository{db: db}
}

const plantColumns = `id, name, species, watering_frequency_days, last_watered_at, health, image, notes, created_at, updated_at`

// scanPlant читает одну строку plants в wire-модель.
func scanPlant(row interface{ Scan(dest ...any) error }) (models.Plant, error) {
	var (
		p     models.Plant
		image sql.NullString
		notes sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.WateringFrequencyDays,
		&p.LastWateredAt,
		&p.Health,
		&image,
		&notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Plant{}, err
	}

	if image.Valid {
		v := image.String
		p.Image = &v
	}
	if notes.Valid {
		v := notes.String
		p.Notes = &v
	}
	return p, nil
}

// Create сохраняет новое растение пользователя.
//
// ID генерирует база (uuid), created_at/updated_at проставляются сервером.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *PlantsRepository) Create(ctx context.Context, ownerID uuid.UUID, req models.CreatePlantRequest) (models.Plant, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO plants (owner_id, name, species, watering_frequency_days, last_watered_at, health, image, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+plantColumns,
		ownerID,
		req.Name,
		req.Species,
		req.WateringFrequencyDays,
		req.LastWateredAt,
		string(req.Health),
		req.Image,
		req.Notes,
	)

	p, err := scanPlant(row)
	if err != nil {
		return models.Plant{}, serr.ErrInternal
	}
	return p, nil
}

// ListByOwner возвращает все растения пользователя в порядке добавления.
func (r *PlantsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Plant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+plantColumns+`
		  FROM plants
		 WHERE owner_id = $1
		 ORDER BY created_at, id`,
		ownerID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	plants := make([]models.Plant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return plants, nil
}

// Update выполняет частичное обновление растения и возвращает свежую запись.
//
// Непереданные поля (nil) не трогаются — COALESCE оставляет старое значение.
// Обновление выполняется одним атомарным UPDATE с фильтром по owner_id.
//
// Ошибки:
//   - ErrPlantNotFound — записи с таким id у этого владельца нет
//   - ErrInternal — ошибка базы данных
func (r *PlantsRepository) Update(ctx context.Context, ownerID, plantID uuid.UUID, req models.UpdatePlantRequest) (models.Plant, error) {
	var health *string
	if req.Health != nil {
		h := string(*req.Health)
		health = &h
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE plants
		   SET name                    = COALESCE($3, name),
		       species                 = COALESCE($4, species),
		       watering_frequency_days = COALESCE($5, watering_frequency_days),
		       last_watered_at         = COALESCE($6, last_watered_at),
		       health                  = COALESCE($7, health),
		       image                   = COALESCE($8, image),
		       notes                   = COALESCE($9, notes),
		       updated_at              = now()
		 WHERE id = $1
		   AND owner_id = $2
		 RETURNING `+plantColumns,
		plantID,
		ownerID,
		req.Name,
		req.Species,
		req.WateringFrequencyDays,
		req.LastWateredAt,
		health,
		req.Image,
		req.Notes,
	)

	p, err := scanPlant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Plant{}, serr.ErrPlantNotFound
		}
		return models.Plant{}, serr.ErrInternal
	}
	return p, nil
}

// Delete удаляет растение пользователя.
//
// Ошибки:
//   - ErrPlantNotFound — записи с таким id у этого владельца нет
//   - ErrInternal — ошибка базы данных
func (r *PlantsRepository) Delete(ctx context.Context, ownerID, plantID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM plants WHERE id = $1 AND owner_id = $2`,
		plantID, ownerID,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrPlantNotFound
	}
	return nil
}
