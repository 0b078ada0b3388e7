package news

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Item is a news post. publishedAt defaults to creation time and
// drives the public listing order.
type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Image       *string   `json:"image,omitempty" db:"image"`
	Author      *string   `json:"author,omitempty" db:"author"`
	Slug        string    `json:"slug" db:"slug"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateRequest is the news intake payload. PublishedAt is optional
// RFC3339; blank means "now".
type CreateRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Image, validation.When(r.Image != "", is.URL.Error("image must be a valid URL"))),
		validation.Field(&r.PublishedAt, validation.When(r.PublishedAt != "", validation.Date(time.RFC3339).Error("publishedAt must be RFC3339"))),
	)
}

// UpdateRequest is a partial payload: nil keeps the stored value.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Image       *string `json:"image"`
	Author      *string `json:"author"`
	PublishedAt *string `json:"publishedAt"`
}
