package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/carlisting-server/internal/model"
)

var _ model.CarStore = (*CarRepository)(nil)

const carColumns = `id, owner_id, title, description, tags, images, created_at, updated_at`

type CarRepository struct {
	db *Connection
}

func NewCarRepository(db *Connection) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) Create(ctx context.Context, car model.Car) (model.Car, error) {
	query := `INSERT INTO cars (id, owner_id, title, description, tags, images, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + carColumns

	saved, err := scanCar(r.db.QueryRow(ctx, query,
		car.ID, car.OwnerID, car.Title, car.Description, nonNil(car.Tags), nonNil(car.Images),
		car.CreatedAt, car.UpdatedAt,
	))
	if err != nil {
		return model.Car{}, fmt.Errorf("failed to create car: %w", err)
	}

	return saved, nil
}

// ListByOwner returns the owner's cars, newest first. A non-empty search
// matches title, description or any tag case-insensitively.
func (r *CarRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, search string) ([]model.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE owner_id = $1`
	args := []any{ownerID}

	if search = strings.TrimSpace(search); search != "" {
		query += ` AND (title ILIKE $2 OR description ILIKE $2
				   OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $2))`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	cars := make([]model.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}

	return cars, nil
}

func (r *CarRepository) GetByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 AND owner_id = $2`

	car, err := scanCar(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Car{}, model.ErrNotFound
		}
		return model.Car{}, fmt.Errorf("failed to get car: %w", err)
	}

	return car, nil
}

// Update overwrites the mutable fields of the car, matched by id and owner.
func (r *CarRepository) Update(ctx context.Context, car model.Car) (model.Car, error) {
	query := `UPDATE cars SET title = $3, description = $4, tags = $5, images = $6, updated_at = $7
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + carColumns

	saved, err := scanCar(r.db.QueryRow(ctx, query,
		car.ID, car.OwnerID, car.Title, car.Description, nonNil(car.Tags), nonNil(car.Images), car.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Car{}, model.ErrNotFound
		}
		return model.Car{}, fmt.Errorf("failed to update car: %w", err)
	}

	return saved, nil
}

func (r *CarRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete car: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanCar(row pgx.Row) (model.Car, error) {
	var car model.Car
	err := row.Scan(
		&car.ID, &car.OwnerID, &car.Title, &car.Description, &car.Tags, &car.Images,
		&car.CreatedAt, &car.UpdatedAt,
	)
	return car, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
