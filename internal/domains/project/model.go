package project

import (
	"time"

	"github.com/google/uuid"
)

// Project categories. Master and phd share the thesis-shaped fields,
// research carries the publication-shaped ones.
const (
	CategoryMaster   = "master"
	CategoryPhD      = "phd"
	CategoryResearch = "research"
)

// Author types for research projects.
const (
	AuthorTypeAuthor     = "author"
	AuthorTypeResearcher = "researcher"
)

// Project is a research group project. Exactly one of the two
// category-specific field sets is populated; the validator enforces it.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Keywords    []string  `json:"keywords" db:"keywords"`
	Authors     []string  `json:"authors" db:"authors"`
	Slug        string    `json:"slug" db:"slug"`

	// master / phd
	Year             *int    `json:"year,omitempty" db:"year"`
	ProfessorAdvisor *string `json:"professorAdvisor,omitempty" db:"professor_advisor"`
	University       *string `json:"university,omitempty" db:"university"`
	CoAdvisor        *string `json:"coAdvisor,omitempty" db:"co_advisor"`
	PDFFile          *string `json:"pdfFile,omitempty" db:"pdf_file"`

	// research
	AuthorType *string `json:"authorType,omitempty" db:"author_type"`
	Website    *string `json:"website,omitempty" db:"website"`
	Book       *string `json:"book,omitempty" db:"book"`
	Image      *string `json:"image,omitempty" db:"image"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ToInput converts a persisted project back into the input shape so a
// partial update can be merged and re-validated as a whole.
func (p *Project) ToInput() *Input {
	in := &Input{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Keywords:    append([]string(nil), p.Keywords...),
		Authors:     append([]string(nil), p.Authors...),
		Year:        p.Year,
	}

	in.ProfessorAdvisor = deref(p.ProfessorAdvisor)
	in.University = deref(p.University)
	in.CoAdvisor = deref(p.CoAdvisor)
	in.PDFFile = deref(p.PDFFile)
	in.AuthorType = deref(p.AuthorType)
	in.Website = deref(p.Website)
	in.Book = deref(p.Book)
	in.Image = deref(p.Image)

	return in
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
