package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/internal/shared/utils"
)

// projectService implements project.Service.
type projectService struct {
	repo project.Repository
	now  func() time.Time
}

// NewProjectService creates the service. now is injected so the year
// upper bound and slug disambiguation stay testable; pass time.Now in
// production.
func NewProjectService(repo project.Repository, now func() time.Time) project.Service {
	if now == nil {
		now = time.Now
	}
	return &projectService{repo: repo, now: now}
}

func (s *projectService) List(ctx context.Context) ([]*project.Project, error) {
	return s.repo.List(ctx)
}

// Get resolves either a record id or a slug.
func (s *projectService) Get(ctx context.Context, idOrSlug string) (*project.Project, error) {
	p, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create validates the payload, derives the slug and persists. A slug
// collision is retried once with a timestamp suffix; a second collision
// surfaces as a store error.
func (s *projectService) Create(ctx context.Context, in *project.Input) (*project.Project, error) {
	validated, err := project.ValidateIntake(in, s.now())
	if err != nil {
		return nil, err
	}

	slug, err := utils.GenerateSlug(validated.Title)
	if err != nil {
		return nil, apperrors.NewValidationFailed([]string{"title normalizes to an empty slug"})
	}

	validated.Slug = slug
	created, err := s.repo.Create(ctx, validated)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, project.ErrSlugExists) {
		return nil, err
	}

	// Identical title already taken; disambiguate and retry once.
	validated.Slug = fmt.Sprintf("%s-%d", slug, s.now().UnixNano())
	created, err = s.repo.Create(ctx, validated)
	if err != nil {
		if errors.Is(err, project.ErrSlugExists) {
			return nil, apperrors.NewStoreError(err)
		}
		return nil, err
	}

	return created, nil
}

// Update merges the partial payload onto the stored record, re-runs the
// full intake validation against the merged result and persists. The
// slug never changes after creation.
func (s *projectService) Update(ctx context.Context, idOrSlug string, in *project.UpdateInput) (*project.Project, error) {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	merged := existing.ToInput()
	in.ApplyTo(merged)

	validated, err := project.ValidateIntake(merged, s.now())
	if err != nil {
		return nil, err
	}

	validated.Slug = existing.Slug
	return s.repo.Update(ctx, existing.ID, validated)
}

func (s *projectService) Delete(ctx context.Context, idOrSlug string) error {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, existing.ID)
}

func (s *projectService) resolve(ctx context.Context, idOrSlug string) (*project.Project, error) {
	var p *project.Project
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		p, err = s.repo.GetByID(ctx, id)
	} else {
		p, err = s.repo.GetBySlug(ctx, idOrSlug)
	}

	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("Project")
	}

	return p, nil
}
