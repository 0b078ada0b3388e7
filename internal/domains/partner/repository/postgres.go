package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"labsite-backend/internal/domains/partner"
	"labsite-backend/internal/shared/apperrors"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) partner.Repository {
	return &postgresRepository{pool: pool}
}

const partnerColumns = `id, name, description, logo, website, partnership_type, slug, created_at, updated_at`

func scanPartner(row pgx.Row) (*partner.Partner, error) {
	var p partner.Partner
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Logo, &p.Website,
		&p.PartnershipType, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*partner.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var partners []*partner.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return partners, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	p, err := scanPartner(r.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}
	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*partner.Partner, error) {
	p, err := scanPartner(r.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *partner.Partner) (*partner.Partner, error) {
	query := `
    INSERT INTO partners (name, description, logo, website, partnership_type, slug, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
    RETURNING ` + partnerColumns

	created, err := scanPartner(r.pool.QueryRow(ctx, query,
		p.Name, p.Description, p.Logo, p.Website, p.PartnershipType, p.Slug,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, partner.ErrSlugExists
		}
		return nil, apperrors.NewStoreError(err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, p *partner.Partner) (*partner.Partner, error) {
	query := `
    UPDATE partners
    SET name = $1, description = $2, logo = $3, website = $4, partnership_type = $5, updated_at = NOW()
    WHERE id = $6
    RETURNING ` + partnerColumns

	updated, err := scanPartner(r.pool.QueryRow(ctx, query,
		p.Name, p.Description, p.Logo, p.Website, p.PartnershipType, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Partner")
		}
		return nil, apperrors.NewStoreError(err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("Partner")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
