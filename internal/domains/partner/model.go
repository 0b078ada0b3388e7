package partner

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Partnership types accepted on intake.
const (
	TypeStrategic = "strategic"
	TypeTechnical = "technical"
	TypeCommunity = "community"
	TypeOther     = "other"
)

// Partner is an external organization the group collaborates with.
// The slug is derived from the name.
type Partner struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Logo            *string   `json:"logo,omitempty" db:"logo"`
	Website         string    `json:"website" db:"website"`
	PartnershipType string    `json:"partnershipType" db:"partnership_type"`
	Slug            string    `json:"slug" db:"slug"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateRequest is the partner intake payload.
type CreateRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Logo            string `json:"logo"`
	Website         string `json:"website"`
	PartnershipType string `json:"partnershipType"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Logo, validation.When(r.Logo != "", is.URL.Error("logo must be a valid URL"))),
		validation.Field(&r.Website,
			validation.Required.Error("website is required"),
			is.URL.Error("website must be a valid URL"),
		),
		validation.Field(&r.PartnershipType,
			validation.Required.Error("partnershipType is required"),
			validation.In(TypeStrategic, TypeTechnical, TypeCommunity, TypeOther).
				Error("partnershipType must be one of: strategic, technical, community, other"),
		),
	)
}

// UpdateRequest is a partial payload: nil keeps the stored value.
type UpdateRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Logo            *string `json:"logo"`
	Website         *string `json:"website"`
	PartnershipType *string `json:"partnershipType"`
}
