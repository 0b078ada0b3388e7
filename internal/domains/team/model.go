package team

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Member is a research group member shown on the team page. Members
// have no slug; they are addressed by id only.
type Member struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role"`
	Description string    `json:"description" db:"description"`
	Image       *string   `json:"image,omitempty" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateRequest is the member intake payload.
type CreateRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Role, validation.Required.Error("role is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Image, validation.When(r.Image != "", is.URL.Error("image must be a valid URL"))),
	)
}

// UpdateRequest is a partial payload: nil keeps the stored value.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}
