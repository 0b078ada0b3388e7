package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/shared/apperrors"
)

// fakeRepository is an in-memory project.Repository enforcing the slug
// uniqueness the real store's unique index provides.
type fakeRepository struct {
	records map[uuid.UUID]*project.Project
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[uuid.UUID]*project.Project)}
}

func (f *fakeRepository) List(_ context.Context) ([]*project.Project, error) {
	var out []*project.Project
	for _, p := range f.records {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	return f.records[id], nil
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (*project.Project, error) {
	for _, p := range f.records {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Create(_ context.Context, p *project.Project) (*project.Project, error) {
	for _, existing := range f.records {
		if existing.Slug == p.Slug {
			return nil, project.ErrSlugExists
		}
	}

	stored := *p
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.records[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, p *project.Project) (*project.Project, error) {
	existing, ok := f.records[id]
	if !ok {
		return nil, apperrors.NewNotFound("Project")
	}

	updated := *p
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.records[id] = &updated
	return &updated, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.NewNotFound("Project")
	}
	delete(f.records, id)
	return nil
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newService(repo project.Repository) project.Service {
	counter := int64(0)
	return NewProjectService(repo, func() time.Time {
		// Monotonic fake clock so retry suffixes differ.
		counter++
		return fixedNow.Add(time.Duration(counter) * time.Nanosecond)
	})
}

func masterInput(title string) *project.Input {
	year := 2023
	return &project.Input{
		Title:            title,
		Description:      "d",
		Category:         project.CategoryMaster,
		Keywords:         []string{"a"},
		Authors:          []string{"b"},
		Year:             &year,
		ProfessorAdvisor: "X",
	}
}

func TestCreateAssignsSlug(t *testing.T) {
	svc := newService(newFakeRepository())

	created, err := svc.Create(context.Background(), masterInput("Graph Neural Networks"))
	require.NoError(t, err)

	assert.Equal(t, "graph-neural-networks", created.Slug)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateIdenticalTitlesGetDistinctSlugs(t *testing.T) {
	svc := newService(newFakeRepository())
	ctx := context.Background()

	first, err := svc.Create(ctx, masterInput("Same Title"))
	require.NoError(t, err)

	second, err := svc.Create(ctx, masterInput("Same Title"))
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "same-title-")
}

func TestCreateSecondCollisionSurfacesStoreError(t *testing.T) {
	repo := &collidingRepository{}
	svc := NewProjectService(repo, func() time.Time { return fixedNow })

	_, err := svc.Create(context.Background(), masterInput("Same Title"))
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreError(err))
	assert.Equal(t, 2, repo.createCalls, "retries exactly once")
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc := newService(newFakeRepository())

	in := masterInput("Valid Title")
	in.Category = "bogus"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
}

func TestCreateRejectsSymbolOnlyTitle(t *testing.T) {
	svc := newService(newFakeRepository())

	_, err := svc.Create(context.Background(), masterInput("!!!"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
}

func TestGetByIDAndSlug(t *testing.T) {
	svc := newService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, masterInput("Findable Project"))
	require.NoError(t, err)

	byID, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := svc.Get(ctx, "findable-project")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	svc := newService(newFakeRepository())

	_, err := svc.Get(context.Background(), "no-such-project")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePreservesSlugAndRevalidates(t *testing.T) {
	svc := newService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, masterInput("Stable Slug"))
	require.NoError(t, err)

	newTitle := "Renamed Completely"
	updated, err := svc.Update(ctx, created.Slug, &project.UpdateInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Completely", updated.Title)
	assert.Equal(t, "stable-slug", updated.Slug, "slug is immutable")

	// A merge that breaks the category rules is rejected as a whole.
	website := "https://example.org"
	_, err = svc.Update(ctx, created.Slug, &project.UpdateInput{Website: &website})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
	assert.Contains(t, apperrors.GetViolations(err), "website is not allowed for master and phd projects")
}

func TestUpdateUnknownReturnsNotFound(t *testing.T) {
	svc := newService(newFakeRepository())

	title := "x"
	_, err := svc.Update(context.Background(), uuid.NewString(), &project.UpdateInput{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteUnknownReturnsNotFound(t *testing.T) {
	svc := newService(newFakeRepository())

	err := svc.Delete(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc := newService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, masterInput("Short Lived"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Slug))

	_, err = svc.Get(ctx, created.Slug)
	assert.True(t, apperrors.IsNotFound(err))
}

// collidingRepository reports a slug collision on every create.
type collidingRepository struct {
	fakeRepository
	createCalls int
}

func (c *collidingRepository) Create(_ context.Context, _ *project.Project) (*project.Project, error) {
	c.createCalls++
	return nil, project.ErrSlugExists
}
