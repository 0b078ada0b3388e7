package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/partner"
	"labsite-backend/internal/shared/apperrors"
)

type fakeRepository struct {
	partners []*partner.Partner
}

func (r *fakeRepository) List(ctx context.Context) ([]*partner.Partner, error) {
	return r.partners, nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	for _, p := range r.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) GetBySlug(ctx context.Context, slug string) (*partner.Partner, error) {
	for _, p := range r.partners {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) Create(ctx context.Context, p *partner.Partner) (*partner.Partner, error) {
	for _, existing := range r.partners {
		if existing.Slug == p.Slug {
			return nil, partner.ErrSlugExists
		}
	}
	stored := *p
	stored.ID = uuid.New()
	r.partners = append(r.partners, &stored)
	return &stored, nil
}

func (r *fakeRepository) Update(ctx context.Context, id uuid.UUID, p *partner.Partner) (*partner.Partner, error) {
	for i, existing := range r.partners {
		if existing.ID == id {
			updated := *p
			updated.ID = id
			updated.Slug = existing.Slug
			r.partners[i] = &updated
			return &updated, nil
		}
	}
	return nil, apperrors.NewNotFound("Partner")
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range r.partners {
		if existing.ID == id {
			r.partners = append(r.partners[:i], r.partners[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("Partner")
}

func validRequest() *partner.CreateRequest {
	return &partner.CreateRequest{
		Name:            "Acme Research Labs",
		Description:     "Long-standing industry collaborator.",
		Website:         "https://acme.example.com",
		PartnershipType: "strategic",
	}
}

func TestCreateDerivesSlugFromName(t *testing.T) {
	svc := NewPartnerService(&fakeRepository{}, nil)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "acme-research-labs", created.Slug)
}

func TestCreateRejectsUnknownPartnershipType(t *testing.T) {
	svc := NewPartnerService(&fakeRepository{}, nil)

	req := validRequest()
	req.PartnershipType = "sponsor"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
	assert.Contains(t, apperrors.GetViolations(err),
		"partnershipType: partnershipType must be one of: strategic, technical, community, other")
}

func TestCreateAcceptsMixedCasePartnershipType(t *testing.T) {
	svc := NewPartnerService(&fakeRepository{}, nil)

	req := validRequest()
	req.PartnershipType = "  Strategic "

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "strategic", created.PartnershipType)
}

func TestUpdateAcceptsMixedCasePartnershipType(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPartnerService(repo, nil)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	mixed := "Technical"
	updated, err := svc.Update(context.Background(), created.Slug, &partner.UpdateRequest{PartnershipType: &mixed})
	require.NoError(t, err)
	assert.Equal(t, "technical", updated.PartnershipType)
}

func TestCreateRequiresWebsite(t *testing.T) {
	svc := NewPartnerService(&fakeRepository{}, nil)

	req := validRequest()
	req.Website = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
	assert.Contains(t, apperrors.GetViolations(err), "website: website is required")
}

func TestUpdateMergesAndRevalidates(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPartnerService(repo, nil)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	badType := "sponsor"
	_, err = svc.Update(context.Background(), created.Slug, &partner.UpdateRequest{PartnershipType: &badType})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))

	goodType := "technical"
	updated, err := svc.Update(context.Background(), created.Slug, &partner.UpdateRequest{PartnershipType: &goodType})
	require.NoError(t, err)
	assert.Equal(t, "technical", updated.PartnershipType)
	assert.Equal(t, created.Slug, updated.Slug)
	// Untouched fields survive the merge.
	assert.Equal(t, "Acme Research Labs", updated.Name)
}
