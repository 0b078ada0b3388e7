package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/project"
)

// inputFromForm adapts a multipart form submission into project.Input.
// Collection fields accept either repeated form fields or a single
// comma-separated value, matching what the admin form posts.
func inputFromForm(c *gin.Context) (*project.Input, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	in := &project.Input{
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		Category:         c.PostForm("category"),
		Keywords:         formList(form.Value["keywords"]),
		Authors:          formList(form.Value["authors"]),
		ProfessorAdvisor: c.PostForm("professorAdvisor"),
		University:       c.PostForm("university"),
		CoAdvisor:        c.PostForm("coAdvisor"),
		PDFFile:          c.PostForm("pdfFile"),
		AuthorType:       c.PostForm("authorType"),
		Website:          c.PostForm("website"),
		Book:             c.PostForm("book"),
		Image:            c.PostForm("image"),
	}

	if yearStr := c.PostForm("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("year must be an integer: %q", yearStr)
		}
		in.Year = &year
	}

	return in, nil
}

// updateInputFromForm adapts a multipart form into project.UpdateInput.
// Only fields present in the form become non-nil; everything the form
// omits keeps the stored value during the merge.
func updateInputFromForm(c *gin.Context) (*project.UpdateInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	in := &project.UpdateInput{}

	setString := func(field string, dst **string) {
		if values, ok := form.Value[field]; ok && len(values) > 0 {
			value := values[0]
			*dst = &value
		}
	}

	setString("title", &in.Title)
	setString("description", &in.Description)
	setString("category", &in.Category)
	setString("professorAdvisor", &in.ProfessorAdvisor)
	setString("university", &in.University)
	setString("coAdvisor", &in.CoAdvisor)
	setString("pdfFile", &in.PDFFile)
	setString("authorType", &in.AuthorType)
	setString("website", &in.Website)
	setString("book", &in.Book)
	setString("image", &in.Image)

	if values, ok := form.Value["keywords"]; ok {
		keywords := formList(values)
		in.Keywords = &keywords
	}
	if values, ok := form.Value["authors"]; ok {
		authors := formList(values)
		in.Authors = &authors
	}

	if values, ok := form.Value["year"]; ok && len(values) > 0 {
		year, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("year must be an integer: %q", values[0])
		}
		in.Year = &year
	}

	return in, nil
}

// formList flattens repeated fields and splits comma-separated values.
func formList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
