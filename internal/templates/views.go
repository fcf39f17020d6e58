package templates

import "github.com/csg33k/hr-review-portal/internal/domain"

// DetailView is one employee's form, rendered read-only with the note widget.
type DetailView struct {
	EmployeeID    string
	FormType      string
	Title         string
	ApplicationID string
	Status        string
	Submitted     bool
	Fields        []domain.FormField

	PrevFormType, PrevTitle string
	NextFormType, NextTitle string

	Widget WidgetView
}

// WidgetView is the note submission widget's rendered state.
type WidgetView struct {
	EmployeeID string
	FormType   string
	FormID     string

	Note         string
	ReviewedAt   string
	Signature    string
	SignatureURL string

	ShowSignature bool
	CounterSign   bool

	CompanyRepName         string
	CompanyRepSignature    string
	CompanyRepSignatureURL string

	Flash    string
	FlashErr bool
}
