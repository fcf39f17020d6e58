package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/csg33k/hr-review-portal/internal/adapters/pdf"
	"github.com/csg33k/hr-review-portal/internal/domain"
)

func reviewDoc() *domain.ReviewDocument {
	return &domain.ReviewDocument{
		EmployeeID:    "E1",
		ApplicationID: "app-1",
		FormType:      "non-compete-agreement",
		Title:         "Non-Compete Agreement",
		Status:        "under_review",
		Fields: []domain.FormField{
			{Key: "employeeName", Value: "Jordan Smith"},
			{Key: "signedDate", Value: "2024-03-01"},
		},
		Feedback: &domain.HRFeedback{
			Comment:        "verified diploma",
			ReviewedAt:     "2024-03-09T14:30:05.123Z",
			CompanyRepName: "Pat Rep",
		},
		SignatureURL:           "http://api.local/uploads/hr.png",
		CompanyRepSignatureURL: "http://api.local/uploads/rep.png",
		GeneratedAt:            time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_WritesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := pdf.New().Generate(context.Background(), reviewDoc(), &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestGenerate_ContainsReviewText(t *testing.T) {
	var buf bytes.Buffer
	g := pdf.New(pdf.WithCompression(false))
	if err := g.Generate(context.Background(), reviewDoc(), &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"verified diploma", "Jordan Smith", "Pat Rep", "http://api.local/uploads/rep.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("PDF text missing %q", want)
		}
	}
}

func TestGenerate_PaginatesLongForms(t *testing.T) {
	doc := reviewDoc()
	doc.Fields = nil
	for i := 0; i < 120; i++ {
		doc.Fields = append(doc.Fields, domain.FormField{Key: fmt.Sprintf("field%03d", i), Value: "value"})
	}
	var buf bytes.Buffer
	if err := pdf.New(pdf.WithCompression(false)).Generate(context.Background(), doc, &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "/Type /Page") - strings.Count(out, "/Type /Pages"); n < 2 {
		t.Errorf("expected multiple pages, got %d", n)
	}
}

func TestGenerate_NoFeedbackYet(t *testing.T) {
	doc := reviewDoc()
	doc.Feedback = nil
	doc.SignatureURL = ""
	doc.CompanyRepSignatureURL = ""
	var buf bytes.Buffer
	if err := pdf.New().Generate(context.Background(), doc, &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pdf.New().Generate(ctx, reviewDoc(), &bytes.Buffer{}); err == nil {
		t.Error("want error for cancelled context")
	}
}
