package project

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"labsite-backend/internal/shared/apperrors"
)

// minYear is the lower bound for thesis years.
const minYear = 1900

// ValidateIntake decides accept/reject for a project payload. Pure
// function of the payload and now (injected so the year upper bound and
// tests stay deterministic).
//
// Checks run in a fixed order and all of them run to completion before
// anything is surfaced: category validity first, then category-forbidden
// fields, then required/conditional fields. The one exception: an
// invalid category skips the category-specific checks entirely, since
// they cannot be evaluated against an unknown category.
//
// On accept the returned Project is normalized: strings trimmed, blank
// optionals dropped, and the other category's field set cleared.
func ValidateIntake(in *Input, now time.Time) (*Project, error) {
	in.normalize()

	var violations []string

	// 1. Category validity, reported on its own.
	categoryValid := in.Category == CategoryMaster || in.Category == CategoryPhD || in.Category == CategoryResearch
	if !categoryValid {
		violations = append(violations, "category must be one of: master, phd, research")
	}

	// 2. Mutually exclusive optional fields, regardless of whether the
	// required checks pass.
	if categoryValid {
		violations = append(violations, in.forbiddenFieldViolations()...)
	}

	// 3. Required and conditional fields.
	violations = append(violations, in.requiredFieldViolations(categoryValid, now)...)

	if len(violations) > 0 {
		return nil, apperrors.NewValidationFailed(violations)
	}

	return in.toProject(), nil
}

// normalize trims every string field and drops blank collection
// entries. Runs before any check so "   " never counts as present.
func (in *Input) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	in.Keywords = trimList(in.Keywords)
	in.Authors = trimList(in.Authors)
	in.ProfessorAdvisor = strings.TrimSpace(in.ProfessorAdvisor)
	in.University = strings.TrimSpace(in.University)
	in.CoAdvisor = strings.TrimSpace(in.CoAdvisor)
	in.PDFFile = strings.TrimSpace(in.PDFFile)
	in.AuthorType = strings.ToLower(strings.TrimSpace(in.AuthorType))
	in.Website = strings.TrimSpace(in.Website)
	in.Book = strings.TrimSpace(in.Book)
	in.Image = strings.TrimSpace(in.Image)
}

func trimList(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (in *Input) forbiddenFieldViolations() []string {
	var violations []string

	if in.Category == CategoryResearch {
		if in.PDFFile != "" {
			violations = append(violations, "pdfFile is not allowed for research projects")
		}
		if in.CoAdvisor != "" {
			violations = append(violations, "coAdvisor is not allowed for research projects")
		}
		return violations
	}

	// master / phd
	if in.Website != "" {
		violations = append(violations, "website is not allowed for master and phd projects")
	}
	if in.Book != "" {
		violations = append(violations, "book is not allowed for master and phd projects")
	}
	if in.Image != "" {
		violations = append(violations, "image is not allowed for master and phd projects")
	}

	return violations
}

func (in *Input) requiredFieldViolations(categoryValid bool, now time.Time) []string {
	var violations []string

	if in.Title == "" {
		violations = append(violations, "title is required")
	}
	if in.Description == "" {
		violations = append(violations, "description is required")
	}
	if len(in.Keywords) == 0 {
		violations = append(violations, "keywords (at least one required)")
	}
	if len(in.Authors) == 0 {
		violations = append(violations, "authors (at least one required)")
	}

	// Category-specific requirements are only meaningful once the
	// category itself is known to be valid.
	if !categoryValid {
		return violations
	}

	if in.Category == CategoryResearch {
		switch in.AuthorType {
		case "":
			violations = append(violations, "authorType is required")
		case AuthorTypeAuthor, AuthorTypeResearcher:
		default:
			violations = append(violations, "authorType must be one of: author, researcher")
		}

		violations = append(violations, urlViolations(map[string]string{
			"website": in.Website,
			"book":    in.Book,
			"image":   in.Image,
		})...)

		return violations
	}

	// master / phd
	maxYear := now.Year() + 1
	if in.Year == nil {
		violations = append(violations, "year is required")
	} else if *in.Year < minYear || *in.Year > maxYear {
		violations = append(violations, fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	}

	if in.ProfessorAdvisor == "" {
		violations = append(violations, "professorAdvisor is required")
	}

	if in.Category == CategoryPhD && in.University == "" {
		violations = append(violations, "university is required for phd projects")
	}

	violations = append(violations, urlViolations(map[string]string{
		"pdfFile": in.PDFFile,
	})...)

	return violations
}

// urlViolations validates present optional URL fields, in a fixed
// report order.
func urlViolations(fields map[string]string) []string {
	order := []string{"pdfFile", "website", "book", "image"}

	var violations []string
	for _, name := range order {
		value, ok := fields[name]
		if !ok || value == "" {
			continue
		}
		if err := validation.Validate(value, is.URL); err != nil {
			violations = append(violations, fmt.Sprintf("%s must be a valid URL", name))
		}
	}

	return violations
}

// toProject builds the normalized accepted record. Only the winning
// category's field set survives.
func (in *Input) toProject() *Project {
	p := &Project{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Keywords:    in.Keywords,
		Authors:     in.Authors,
	}

	if in.Category == CategoryResearch {
		p.AuthorType = optional(in.AuthorType)
		p.Website = optional(in.Website)
		p.Book = optional(in.Book)
		p.Image = optional(in.Image)
		return p
	}

	year := *in.Year
	p.Year = &year
	p.ProfessorAdvisor = optional(in.ProfessorAdvisor)
	p.University = optional(in.University)
	p.CoAdvisor = optional(in.CoAdvisor)
	p.PDFFile = optional(in.PDFFile)

	return p
}

// optional returns nil for blank strings so they stay absent in
// storage and on the wire.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
