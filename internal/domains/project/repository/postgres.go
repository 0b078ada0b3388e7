package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/pkg/cache"
	"labsite-backend/pkg/logger"
)

const (
	listCacheKey    = "projects:list"
	slugCachePrefix = "projects:slug:"
	cacheTTL        = 5 * time.Minute
)

// postgresRepository implements project.Repository on pgxpool with a
// read-through Redis cache over the hot public queries.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) project.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const projectColumns = `id, title, description, category, keywords, authors, slug,
    year, professor_advisor, university, co_advisor, pdf_file,
    author_type, website, book, image, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Keywords, &p.Authors, &p.Slug,
		&p.Year, &p.ProfessorAdvisor, &p.University, &p.CoAdvisor, &p.PDFFile,
		&p.AuthorType, &p.Website, &p.Book, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*project.Project, error) {
	var cached []*project.Project
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	if err := r.cache.Set(ctx, listCacheKey, projects, cacheTTL); err != nil {
		logger.Warn("failed to cache project list", err)
	}

	return projects, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}

	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	cacheKey := slugCachePrefix + slug

	var cached project.Project
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}

	if err := r.cache.Set(ctx, cacheKey, p, cacheTTL); err != nil {
		logger.Warn("failed to cache project", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
    INSERT INTO projects (title, description, category, keywords, authors, slug,
      year, professor_advisor, university, co_advisor, pdf_file,
      author_type, website, book, image, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
    RETURNING ` + projectColumns

	row := r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Category, p.Keywords, p.Authors, p.Slug,
		p.Year, p.ProfessorAdvisor, p.University, p.CoAdvisor, p.PDFFile,
		p.AuthorType, p.Website, p.Book, p.Image,
	)

	created, err := scanProject(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, project.ErrSlugExists
		}
		return nil, apperrors.NewStoreError(err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, p *project.Project) (*project.Project, error) {
	query := `
    UPDATE projects
    SET title = $1, description = $2, category = $3, keywords = $4, authors = $5,
        year = $6, professor_advisor = $7, university = $8, co_advisor = $9, pdf_file = $10,
        author_type = $11, website = $12, book = $13, image = $14, updated_at = NOW()
    WHERE id = $15
    RETURNING ` + projectColumns

	row := r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Category, p.Keywords, p.Authors,
		p.Year, p.ProfessorAdvisor, p.University, p.CoAdvisor, p.PDFFile,
		p.AuthorType, p.Website, p.Book, p.Image, id,
	)

	updated, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Project")
		}
		return nil, apperrors.NewStoreError(err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("Project")
	}

	r.invalidate(ctx)
	return nil
}

// invalidate drops every cached project entry after a mutation. Cache
// failures only cost freshness, never correctness.
func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, "projects:*"); err != nil {
		logger.Warn("failed to invalidate project cache", err)
	}
}

// isUniqueViolation detects the Postgres unique_violation error class.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
