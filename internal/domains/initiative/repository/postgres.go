package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"labsite-backend/internal/domains/initiative"
	"labsite-backend/internal/shared/apperrors"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) initiative.Repository {
	return &postgresRepository{pool: pool}
}

const initiativeColumns = `id, title, description, image, category, goals, slug, created_at, updated_at`

func scanInitiative(row pgx.Row) (*initiative.Initiative, error) {
	var i initiative.Initiative
	err := row.Scan(
		&i.ID, &i.Title, &i.Description, &i.Image, &i.Category,
		&i.Goals, &i.Slug, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*initiative.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var initiatives []*initiative.Initiative
	for rows.Next() {
		i, err := scanInitiative(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		initiatives = append(initiatives, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return initiatives, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error) {
	i, err := scanInitiative(r.pool.QueryRow(ctx, `SELECT `+initiativeColumns+` FROM initiatives WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}
	return i, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*initiative.Initiative, error) {
	i, err := scanInitiative(r.pool.QueryRow(ctx, `SELECT `+initiativeColumns+` FROM initiatives WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}
	return i, nil
}

func (r *postgresRepository) Create(ctx context.Context, i *initiative.Initiative) (*initiative.Initiative, error) {
	query := `
    INSERT INTO initiatives (title, description, image, category, goals, slug, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
    RETURNING ` + initiativeColumns

	created, err := scanInitiative(r.pool.QueryRow(ctx, query,
		i.Title, i.Description, i.Image, i.Category, i.Goals, i.Slug,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, initiative.ErrSlugExists
		}
		return nil, apperrors.NewStoreError(err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, i *initiative.Initiative) (*initiative.Initiative, error) {
	query := `
    UPDATE initiatives
    SET title = $1, description = $2, image = $3, category = $4, goals = $5, updated_at = NOW()
    WHERE id = $6
    RETURNING ` + initiativeColumns

	updated, err := scanInitiative(r.pool.QueryRow(ctx, query,
		i.Title, i.Description, i.Image, i.Category, i.Goals, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Initiative")
		}
		return nil, apperrors.NewStoreError(err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM initiatives WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("Initiative")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
