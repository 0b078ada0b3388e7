package initiative

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Initiative is a long-running program or effort the group drives.
// Goals keep their submitted order.
type Initiative struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       *string   `json:"image,omitempty" db:"image"`
	Category    *string   `json:"category,omitempty" db:"category"`
	Goals       []string  `json:"goals" db:"goals"`
	Slug        string    `json:"slug" db:"slug"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateRequest is the initiative intake payload. Category is
// free-text, not an enum.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Goals       []string `json:"goals"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Image, validation.When(r.Image != "", is.URL.Error("image must be a valid URL"))),
	)
}

// UpdateRequest is a partial payload: nil keeps the stored value.
type UpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Goals       *[]string `json:"goals"`
}
