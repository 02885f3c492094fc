// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/Aditya-Angaj/plantcare/internal/server/models"
	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя.
//
// Email хранится как есть (регистр не нормализуем), уникальность
// обеспечивает индекс в БД.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return uuid.Nil, serr.ErrAlreadyExists
			}
		}
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

// GetByEmail возвращает пользователя по email.
//
// Email сравнивается как есть (без нормализации регистра).
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
