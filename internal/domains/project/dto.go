package project

// Input is the single normalized payload shape the intake validator
// sees. The handler maps both JSON bodies and multipart forms into it
// before any validation runs.
type Input struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Authors     []string `json:"authors"`

	// master / phd
	Year             *int   `json:"year"`
	ProfessorAdvisor string `json:"professorAdvisor"`
	University       string `json:"university"`
	CoAdvisor        string `json:"coAdvisor"`
	PDFFile          string `json:"pdfFile"`

	// research
	AuthorType string `json:"authorType"`
	Website    string `json:"website"`
	Book       string `json:"book"`
	Image      string `json:"image"`
}

// UpdateInput is a partial payload: nil means "keep the stored value".
// The service merges it onto the existing record and re-runs the full
// intake validation against the merged result.
type UpdateInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Keywords    *[]string `json:"keywords"`
	Authors     *[]string `json:"authors"`

	Year             *int    `json:"year"`
	ProfessorAdvisor *string `json:"professorAdvisor"`
	University       *string `json:"university"`
	CoAdvisor        *string `json:"coAdvisor"`
	PDFFile          *string `json:"pdfFile"`

	AuthorType *string `json:"authorType"`
	Website    *string `json:"website"`
	Book       *string `json:"book"`
	Image      *string `json:"image"`
}

// ApplyTo merges the partial payload onto in.
func (u *UpdateInput) ApplyTo(in *Input) {
	if u.Title != nil {
		in.Title = *u.Title
	}
	if u.Description != nil {
		in.Description = *u.Description
	}
	if u.Category != nil {
		in.Category = *u.Category
	}
	if u.Keywords != nil {
		in.Keywords = *u.Keywords
	}
	if u.Authors != nil {
		in.Authors = *u.Authors
	}
	if u.Year != nil {
		in.Year = u.Year
	}
	if u.ProfessorAdvisor != nil {
		in.ProfessorAdvisor = *u.ProfessorAdvisor
	}
	if u.University != nil {
		in.University = *u.University
	}
	if u.CoAdvisor != nil {
		in.CoAdvisor = *u.CoAdvisor
	}
	if u.PDFFile != nil {
		in.PDFFile = *u.PDFFile
	}
	if u.AuthorType != nil {
		in.AuthorType = *u.AuthorType
	}
	if u.Website != nil {
		in.Website = *u.Website
	}
	if u.Book != nil {
		in.Book = *u.Book
	}
	if u.Image != nil {
		in.Image = *u.Image
	}
}
