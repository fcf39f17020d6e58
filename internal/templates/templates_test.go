package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/csg33k/hr-review-portal/internal/domain"
	"github.com/csg33k/hr-review-portal/internal/templates"
)

func TestNoteWidget_EscapesAndSeeds(t *testing.T) {
	var buf bytes.Buffer
	err := templates.NoteWidget(templates.WidgetView{
		EmployeeID:     "E1",
		FormType:       "non-compete-agreement",
		Note:           `<script>alert("x")</script>`,
		ShowSignature:  true,
		Signature:      "/uploads/hr.png",
		SignatureURL:   "http://api.local/uploads/hr.png",
		CounterSign:    true,
		CompanyRepName: "Pat Rep",
	}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "<script>alert") {
		t.Error("note was not escaped")
	}
	for _, want := range []string{
		`&lt;script&gt;`,
		`hx-post="/employees/E1/forms/non-compete-agreement/notes"`,
		`src="http://api.local/uploads/hr.png"`,
		`name="company_rep_name" value="Pat Rep"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("widget html missing %q", want)
		}
	}
}

func TestNoteWidget_NoCounterSignOutsideNonCompete(t *testing.T) {
	var buf bytes.Buffer
	if err := templates.NoteWidget(templates.WidgetView{EmployeeID: "E1", FormType: "i9-form"}).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "company_rep_name") {
		t.Error("counter-signature fields rendered for i9-form")
	}
}

func TestDetail_RendersFieldsAndNav(t *testing.T) {
	var buf bytes.Buffer
	err := templates.Detail(templates.DetailView{
		EmployeeID:   "E 1",
		FormType:     "education",
		Title:        "Education",
		Submitted:    true,
		Fields:       []domain.FormField{{Key: "highSchool", Value: "Central & West"}},
		PrevFormType: "w9-form", PrevTitle: "Form W-9",
		NextFormType: "work-experience", NextTitle: "Work Experience",
		Widget:       templates.WidgetView{EmployeeID: "E 1", FormType: "education"},
	}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"<!doctype html>",
		"Central &amp; West",
		`href="/employees/E%201/forms/w9-form"`,
		`href="/employees/E%201/forms/work-experience"`,
		`id="note-widget"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("detail html missing %q", want)
		}
	}
}
