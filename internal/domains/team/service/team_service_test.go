package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/team"
	"labsite-backend/internal/shared/apperrors"
)

type fakeRepository struct {
	members []*team.Member
}

func (r *fakeRepository) List(ctx context.Context) ([]*team.Member, error) {
	return r.members, nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) Create(ctx context.Context, m *team.Member) (*team.Member, error) {
	stored := *m
	stored.ID = uuid.New()
	r.members = append(r.members, &stored)
	return &stored, nil
}

func (r *fakeRepository) Update(ctx context.Context, id uuid.UUID, m *team.Member) (*team.Member, error) {
	for i, existing := range r.members {
		if existing.ID == id {
			updated := *m
			updated.ID = id
			r.members[i] = &updated
			return &updated, nil
		}
	}
	return nil, apperrors.NewNotFound("Team member")
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range r.members {
		if existing.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("Team member")
}

func validRequest() *team.CreateRequest {
	return &team.CreateRequest{
		Name:        "Dr. Maria Silva",
		Role:        "Principal Investigator",
		Description: "Leads the distributed systems line.",
	}
}

func TestCreateTrimsAndStoresMember(t *testing.T) {
	svc := NewTeamService(&fakeRepository{})

	req := validRequest()
	req.Name = "  Dr. Maria Silva  "

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Maria Silva", created.Name)
	assert.Nil(t, created.Image)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateRequiresNameRoleDescription(t *testing.T) {
	svc := NewTeamService(&fakeRepository{})

	_, err := svc.Create(context.Background(), &team.CreateRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))

	violations := apperrors.GetViolations(err)
	assert.Contains(t, violations, "name: name is required")
	assert.Contains(t, violations, "role: role is required")
	assert.Contains(t, violations, "description: description is required")
}

func TestCreateRejectsMalformedImageURL(t *testing.T) {
	svc := NewTeamService(&fakeRepository{})

	req := validRequest()
	req.Image = "not a url"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
	assert.Contains(t, apperrors.GetViolations(err), "image: image must be a valid URL")
}

func TestGetRejectsNonUUID(t *testing.T) {
	svc := NewTeamService(&fakeRepository{})

	// Members have no slug, so anything that is not a uuid cannot match.
	_, err := svc.Get(context.Background(), "maria-silva")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateMergesOntoStoredMember(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewTeamService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	newRole := "Emeritus"
	updated, err := svc.Update(context.Background(), created.ID.String(), &team.UpdateRequest{Role: &newRole})
	require.NoError(t, err)

	assert.Equal(t, "Emeritus", updated.Role)
	// Untouched fields survive the merge.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
}

func TestUpdateRevalidatesMergedResult(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewTeamService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), created.ID.String(), &team.UpdateRequest{Name: &empty})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
}

func TestDeleteUnknownReturnsNotFound(t *testing.T) {
	svc := NewTeamService(&fakeRepository{})

	err := svc.Delete(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
