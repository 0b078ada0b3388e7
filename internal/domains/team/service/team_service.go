package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"labsite-backend/internal/domains/team"
	"labsite-backend/internal/shared/apperrors"
)

type teamService struct {
	repo team.Repository
}

func NewTeamService(repo team.Repository) team.Service {
	return &teamService{repo: repo}
}

func (s *teamService) List(ctx context.Context) ([]*team.Member, error) {
	return s.repo.List(ctx)
}

func (s *teamService) Get(ctx context.Context, idStr string) (*team.Member, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, apperrors.NewNotFound("Team member")
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperrors.NewNotFound("Team member")
	}

	return m, nil
}

func (s *teamService) Create(ctx context.Context, req *team.CreateRequest) (*team.Member, error) {
	if err := apperrors.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	m := &team.Member{
		Name:        strings.TrimSpace(req.Name),
		Role:        strings.TrimSpace(req.Role),
		Description: strings.TrimSpace(req.Description),
	}
	if image := strings.TrimSpace(req.Image); image != "" {
		m.Image = &image
	}

	return s.repo.Create(ctx, m)
}

func (s *teamService) Update(ctx context.Context, idStr string, req *team.UpdateRequest) (*team.Member, error) {
	existing, err := s.Get(ctx, idStr)
	if err != nil {
		return nil, err
	}

	// Merge onto the stored record, then re-validate the whole.
	merged := team.CreateRequest{
		Name:        existing.Name,
		Role:        existing.Role,
		Description: existing.Description,
	}
	if existing.Image != nil {
		merged.Image = *existing.Image
	}

	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Role != nil {
		merged.Role = *req.Role
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}

	if err := apperrors.FromValidation(merged.Validate()); err != nil {
		return nil, err
	}

	m := &team.Member{
		Name:        strings.TrimSpace(merged.Name),
		Role:        strings.TrimSpace(merged.Role),
		Description: strings.TrimSpace(merged.Description),
	}
	if image := strings.TrimSpace(merged.Image); image != "" {
		m.Image = &image
	}

	return s.repo.Update(ctx, existing.ID, m)
}

func (s *teamService) Delete(ctx context.Context, idStr string) error {
	existing, err := s.Get(ctx, idStr)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, existing.ID)
}
