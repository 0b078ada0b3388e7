package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/news"
	"labsite-backend/internal/shared/apperrors"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeRepository struct {
	items []*news.Item
}

func (r *fakeRepository) List(ctx context.Context) ([]*news.Item, error) {
	return r.items, nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*news.Item, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) GetBySlug(ctx context.Context, slug string) (*news.Item, error) {
	for _, item := range r.items {
		if item.Slug == slug {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) Create(ctx context.Context, item *news.Item) (*news.Item, error) {
	for _, existing := range r.items {
		if existing.Slug == item.Slug {
			return nil, news.ErrSlugExists
		}
	}
	stored := *item
	stored.ID = uuid.New()
	r.items = append(r.items, &stored)
	return &stored, nil
}

func (r *fakeRepository) Update(ctx context.Context, id uuid.UUID, item *news.Item) (*news.Item, error) {
	for i, existing := range r.items {
		if existing.ID == id {
			updated := *item
			updated.ID = id
			updated.Slug = existing.Slug
			r.items[i] = &updated
			return &updated, nil
		}
	}
	return nil, apperrors.NewNotFound("News item")
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range r.items {
		if existing.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("News item")
}

func TestCreateDefaultsPublishedAtToNow(t *testing.T) {
	svc := NewNewsService(&fakeRepository{}, func() time.Time { return testNow })

	created, err := svc.Create(context.Background(), &news.CreateRequest{
		Title:   "Lab Wins Best Paper Award",
		Content: "Details of the award.",
	})
	require.NoError(t, err)
	assert.Equal(t, testNow, created.PublishedAt)
	assert.Equal(t, "lab-wins-best-paper-award", created.Slug)
}

func TestCreateHonorsExplicitPublishedAt(t *testing.T) {
	svc := NewNewsService(&fakeRepository{}, func() time.Time { return testNow })

	created, err := svc.Create(context.Background(), &news.CreateRequest{
		Title:       "Conference Recap",
		Content:     "What happened at the conference.",
		PublishedAt: "2023-01-02T15:04:05Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 2, 15, 4, 5, 0, time.UTC), created.PublishedAt.UTC())
}

func TestCreateRejectsMalformedPublishedAt(t *testing.T) {
	svc := NewNewsService(&fakeRepository{}, func() time.Time { return testNow })

	_, err := svc.Create(context.Background(), &news.CreateRequest{
		Title:       "Broken Date",
		Content:     "body",
		PublishedAt: "02/01/2023",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
}

func TestCreateIdenticalTitlesGetDistinctSlugs(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewNewsService(repo, func() time.Time { return testNow })

	first, err := svc.Create(context.Background(), &news.CreateRequest{Title: "Open House", Content: "a"})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), &news.CreateRequest{Title: "Open House", Content: "b"})
	require.NoError(t, err)

	assert.Equal(t, "open-house", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "open-house-")
}

func TestUpdatePreservesSlug(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewNewsService(repo, func() time.Time { return testNow })

	created, err := svc.Create(context.Background(), &news.CreateRequest{Title: "Original Title", Content: "a"})
	require.NoError(t, err)

	newTitle := "Renamed Title"
	updated, err := svc.Update(context.Background(), created.Slug, &news.UpdateRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Title", updated.Title)
	assert.Equal(t, "original-title", updated.Slug)
}

func TestUpdateKeepsPublishedAtPrecision(t *testing.T) {
	preciseNow := time.Date(2024, 6, 15, 12, 0, 0, 123456789, time.UTC)
	repo := &fakeRepository{}
	svc := NewNewsService(repo, func() time.Time { return preciseNow })

	created, err := svc.Create(context.Background(), &news.CreateRequest{Title: "Precision Matters", Content: "a"})
	require.NoError(t, err)
	require.Equal(t, preciseNow, created.PublishedAt)

	// An update that does not touch publishedAt must not disturb it,
	// down to the nanosecond.
	newTitle := "Still Precise"
	updated, err := svc.Update(context.Background(), created.Slug, &news.UpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, preciseNow, updated.PublishedAt)
}

func TestUpdateRejectsMalformedPublishedAt(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewNewsService(repo, func() time.Time { return testNow })

	created, err := svc.Create(context.Background(), &news.CreateRequest{Title: "Some Post", Content: "a"})
	require.NoError(t, err)

	bad := "yesterday"
	_, err = svc.Update(context.Background(), created.Slug, &news.UpdateRequest{PublishedAt: &bad})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	svc := NewNewsService(&fakeRepository{}, nil)

	_, err := svc.Get(context.Background(), "missing-slug")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
