package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"labsite-backend/internal/domains/news"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/pkg/cache"
	"labsite-backend/pkg/logger"
)

const (
	listCacheKey = "news:list"
	cacheTTL     = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) news.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const newsColumns = `id, title, content, image, author, slug, published_at, created_at, updated_at`

func scanItem(row pgx.Row) (*news.Item, error) {
	var item news.Item
	err := row.Scan(
		&item.ID, &item.Title, &item.Content, &item.Image, &item.Author,
		&item.Slug, &item.PublishedAt, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*news.Item, error) {
	var cached []*news.Item
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	// News is ordered by publish time, newest first.
	query := `SELECT ` + newsColumns + ` FROM news_items ORDER BY published_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var items []*news.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	if err := r.cache.Set(ctx, listCacheKey, items, cacheTTL); err != nil {
		logger.Warn("failed to cache news list", err)
	}

	return items, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*news.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx, `SELECT `+newsColumns+` FROM news_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}
	return item, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*news.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx, `SELECT `+newsColumns+` FROM news_items WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError(err)
	}
	return item, nil
}

func (r *postgresRepository) Create(ctx context.Context, item *news.Item) (*news.Item, error) {
	query := `
    INSERT INTO news_items (title, content, image, author, slug, published_at, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
    RETURNING ` + newsColumns

	created, err := scanItem(r.pool.QueryRow(ctx, query,
		item.Title, item.Content, item.Image, item.Author, item.Slug, item.PublishedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, news.ErrSlugExists
		}
		return nil, apperrors.NewStoreError(err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, item *news.Item) (*news.Item, error) {
	query := `
    UPDATE news_items
    SET title = $1, content = $2, image = $3, author = $4, published_at = $5, updated_at = NOW()
    WHERE id = $6
    RETURNING ` + newsColumns

	updated, err := scanItem(r.pool.QueryRow(ctx, query,
		item.Title, item.Content, item.Image, item.Author, item.PublishedAt, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("News item")
		}
		return nil, apperrors.NewStoreError(err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM news_items WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("News item")
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Warn("failed to invalidate news cache", err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
