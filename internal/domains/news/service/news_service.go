package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"labsite-backend/internal/domains/news"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/internal/shared/utils"
)

type newsService struct {
	repo news.Repository
	now  func() time.Time
}

func NewNewsService(repo news.Repository, now func() time.Time) news.Service {
	if now == nil {
		now = time.Now
	}
	return &newsService{repo: repo, now: now}
}

func (s *newsService) List(ctx context.Context) ([]*news.Item, error) {
	return s.repo.List(ctx)
}

func (s *newsService) Get(ctx context.Context, idOrSlug string) (*news.Item, error) {
	return s.resolve(ctx, idOrSlug)
}

func (s *newsService) Create(ctx context.Context, req *news.CreateRequest) (*news.Item, error) {
	if err := apperrors.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	item := &news.Item{
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		PublishedAt: s.now(),
	}
	if image := strings.TrimSpace(req.Image); image != "" {
		item.Image = &image
	}
	if author := strings.TrimSpace(req.Author); author != "" {
		item.Author = &author
	}
	if req.PublishedAt != "" {
		publishedAt, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			return nil, apperrors.NewValidationFailed([]string{"publishedAt must be RFC3339"})
		}
		item.PublishedAt = publishedAt
	}

	slug, err := utils.GenerateSlug(item.Title)
	if err != nil {
		return nil, apperrors.NewValidationFailed([]string{"title normalizes to an empty slug"})
	}

	item.Slug = slug
	created, err := s.repo.Create(ctx, item)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, news.ErrSlugExists) {
		return nil, err
	}

	item.Slug = fmt.Sprintf("%s-%d", slug, s.now().UnixNano())
	created, err = s.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, news.ErrSlugExists) {
			return nil, apperrors.NewStoreError(err)
		}
		return nil, err
	}

	return created, nil
}

func (s *newsService) Update(ctx context.Context, idOrSlug string, req *news.UpdateRequest) (*news.Item, error) {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	merged := news.CreateRequest{
		Title:   existing.Title,
		Content: existing.Content,
	}
	if existing.Image != nil {
		merged.Image = *existing.Image
	}
	if existing.Author != nil {
		merged.Author = *existing.Author
	}

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Content != nil {
		merged.Content = *req.Content
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}
	if req.Author != nil {
		merged.Author = *req.Author
	}

	// The stored timestamp carries through untouched unless the payload
	// replaces it; only the replacement ever passes through parsing.
	publishedAt := existing.PublishedAt
	if req.PublishedAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PublishedAt)
		if err != nil {
			return nil, apperrors.NewValidationFailed([]string{"publishedAt must be RFC3339"})
		}
		publishedAt = parsed
	}

	if err := apperrors.FromValidation(merged.Validate()); err != nil {
		return nil, err
	}

	item := &news.Item{
		Title:       strings.TrimSpace(merged.Title),
		Content:     merged.Content,
		PublishedAt: publishedAt,
	}
	if image := strings.TrimSpace(merged.Image); image != "" {
		item.Image = &image
	}
	if author := strings.TrimSpace(merged.Author); author != "" {
		item.Author = &author
	}

	return s.repo.Update(ctx, existing.ID, item)
}

func (s *newsService) Delete(ctx context.Context, idOrSlug string) error {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, existing.ID)
}

func (s *newsService) resolve(ctx context.Context, idOrSlug string) (*news.Item, error) {
	var item *news.Item
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		item, err = s.repo.GetByID(ctx, id)
	} else {
		item, err = s.repo.GetBySlug(ctx, idOrSlug)
	}

	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("News item")
	}

	return item, nil
}
