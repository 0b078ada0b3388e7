package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"labsite-backend/internal/domains/team"
	"labsite-backend/internal/shared/apperrors"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) team.Repository {
	return &postgresRepository{pool: pool}
}

const memberColumns = `id, name, role, description, image, created_at, updated_at`

func scanMember(row pgx.Row) (*team.Member, error) {
	var m team.Member
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Description, &m.Image, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*team.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var members []*team.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return members, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`

	m, err := scanMember(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}

	return m, nil
}

func (r *postgresRepository) Create(ctx context.Context, m *team.Member) (*team.Member, error) {
	query := `
    INSERT INTO team_members (name, role, description, image, created_at, updated_at)
    VALUES ($1, $2, $3, $4, NOW(), NOW())
    RETURNING ` + memberColumns

	created, err := scanMember(r.pool.QueryRow(ctx, query, m.Name, m.Role, m.Description, m.Image))
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, m *team.Member) (*team.Member, error) {
	query := `
    UPDATE team_members
    SET name = $1, role = $2, description = $3, image = $4, updated_at = NOW()
    WHERE id = $5
    RETURNING ` + memberColumns

	updated, err := scanMember(r.pool.QueryRow(ctx, query, m.Name, m.Role, m.Description, m.Image, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Team member")
		}
		return nil, apperrors.NewStoreError(err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("Team member")
	}

	return nil
}
