package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"labsite-backend/internal/domains/initiative"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/internal/shared/utils"
)

type initiativeService struct {
	repo initiative.Repository
	now  func() time.Time
}

func NewInitiativeService(repo initiative.Repository, now func() time.Time) initiative.Service {
	if now == nil {
		now = time.Now
	}
	return &initiativeService{repo: repo, now: now}
}

func (s *initiativeService) List(ctx context.Context) ([]*initiative.Initiative, error) {
	return s.repo.List(ctx)
}

func (s *initiativeService) Get(ctx context.Context, idOrSlug string) (*initiative.Initiative, error) {
	return s.resolve(ctx, idOrSlug)
}

func (s *initiativeService) Create(ctx context.Context, req *initiative.CreateRequest) (*initiative.Initiative, error) {
	if err := apperrors.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	i := buildInitiative(req)

	slug, err := utils.GenerateSlug(i.Title)
	if err != nil {
		return nil, apperrors.NewValidationFailed([]string{"title normalizes to an empty slug"})
	}

	i.Slug = slug
	created, err := s.repo.Create(ctx, i)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, initiative.ErrSlugExists) {
		return nil, err
	}

	i.Slug = fmt.Sprintf("%s-%d", slug, s.now().UnixNano())
	created, err = s.repo.Create(ctx, i)
	if err != nil {
		if errors.Is(err, initiative.ErrSlugExists) {
			return nil, apperrors.NewStoreError(err)
		}
		return nil, err
	}

	return created, nil
}

func (s *initiativeService) Update(ctx context.Context, idOrSlug string, req *initiative.UpdateRequest) (*initiative.Initiative, error) {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	merged := initiative.CreateRequest{
		Title:       existing.Title,
		Description: existing.Description,
		Goals:       existing.Goals,
	}
	if existing.Image != nil {
		merged.Image = *existing.Image
	}
	if existing.Category != nil {
		merged.Category = *existing.Category
	}

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Goals != nil {
		merged.Goals = *req.Goals
	}

	if err := apperrors.FromValidation(merged.Validate()); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, existing.ID, buildInitiative(&merged))
}

func (s *initiativeService) Delete(ctx context.Context, idOrSlug string) error {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, existing.ID)
}

func (s *initiativeService) resolve(ctx context.Context, idOrSlug string) (*initiative.Initiative, error) {
	var i *initiative.Initiative
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		i, err = s.repo.GetByID(ctx, id)
	} else {
		i, err = s.repo.GetBySlug(ctx, idOrSlug)
	}

	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, apperrors.NewNotFound("Initiative")
	}

	return i, nil
}

// buildInitiative normalizes a validated request. Goal order is
// preserved; blank goals are dropped.
func buildInitiative(req *initiative.CreateRequest) *initiative.Initiative {
	i := &initiative.Initiative{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Goals:       []string{},
	}
	if image := strings.TrimSpace(req.Image); image != "" {
		i.Image = &image
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		i.Category = &category
	}
	for _, goal := range req.Goals {
		if goal = strings.TrimSpace(goal); goal != "" {
			i.Goals = append(i.Goals, goal)
		}
	}
	return i
}
