package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"labsite-backend/internal/domains/partner"
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/internal/shared/utils"
)

type partnerService struct {
	repo partner.Repository
	now  func() time.Time
}

func NewPartnerService(repo partner.Repository, now func() time.Time) partner.Service {
	if now == nil {
		now = time.Now
	}
	return &partnerService{repo: repo, now: now}
}

func (s *partnerService) List(ctx context.Context) ([]*partner.Partner, error) {
	return s.repo.List(ctx)
}

func (s *partnerService) Get(ctx context.Context, idOrSlug string) (*partner.Partner, error) {
	return s.resolve(ctx, idOrSlug)
}

func (s *partnerService) Create(ctx context.Context, req *partner.CreateRequest) (*partner.Partner, error) {
	// Case-fold the enum before validation so "Strategic" passes.
	normalized := *req
	normalized.PartnershipType = strings.ToLower(strings.TrimSpace(normalized.PartnershipType))

	if err := apperrors.FromValidation(normalized.Validate()); err != nil {
		return nil, err
	}

	p := &partner.Partner{
		Name:            strings.TrimSpace(normalized.Name),
		Description:     normalized.Description,
		Website:         strings.TrimSpace(normalized.Website),
		PartnershipType: normalized.PartnershipType,
	}
	if logo := strings.TrimSpace(normalized.Logo); logo != "" {
		p.Logo = &logo
	}

	slug, err := utils.GenerateSlug(p.Name)
	if err != nil {
		return nil, apperrors.NewValidationFailed([]string{"name normalizes to an empty slug"})
	}

	p.Slug = slug
	created, err := s.repo.Create(ctx, p)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, partner.ErrSlugExists) {
		return nil, err
	}

	p.Slug = fmt.Sprintf("%s-%d", slug, s.now().UnixNano())
	created, err = s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, partner.ErrSlugExists) {
			return nil, apperrors.NewStoreError(err)
		}
		return nil, err
	}

	return created, nil
}

func (s *partnerService) Update(ctx context.Context, idOrSlug string, req *partner.UpdateRequest) (*partner.Partner, error) {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	merged := partner.CreateRequest{
		Name:            existing.Name,
		Description:     existing.Description,
		Website:         existing.Website,
		PartnershipType: existing.PartnershipType,
	}
	if existing.Logo != nil {
		merged.Logo = *existing.Logo
	}

	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Logo != nil {
		merged.Logo = *req.Logo
	}
	if req.Website != nil {
		merged.Website = *req.Website
	}
	if req.PartnershipType != nil {
		merged.PartnershipType = *req.PartnershipType
	}
	merged.PartnershipType = strings.ToLower(strings.TrimSpace(merged.PartnershipType))

	if err := apperrors.FromValidation(merged.Validate()); err != nil {
		return nil, err
	}

	p := &partner.Partner{
		Name:            strings.TrimSpace(merged.Name),
		Description:     merged.Description,
		Website:         strings.TrimSpace(merged.Website),
		PartnershipType: merged.PartnershipType,
	}
	if logo := strings.TrimSpace(merged.Logo); logo != "" {
		p.Logo = &logo
	}

	return s.repo.Update(ctx, existing.ID, p)
}

func (s *partnerService) Delete(ctx context.Context, idOrSlug string) error {
	existing, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, existing.ID)
}

func (s *partnerService) resolve(ctx context.Context, idOrSlug string) (*partner.Partner, error) {
	var p *partner.Partner
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
		return nil, apperrors.NewNotFound("Partner")
	}

	return p, nil
}
