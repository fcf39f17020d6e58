// Package pdf generates a printable HR review summary for one onboarding
// form: the employee and application header, the submitted fields as a
// two-column table, and the reviewer's feedback with signature references.
package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/hr-review-portal/internal/domain"
)

const (
	margin    = 18.0
	lineH     = 5.0
	footerGap = 12.0
)

type Generator struct {
	compress bool
}

type Option func(*Generator)

// WithCompression toggles page stream compression (on by default).
func WithCompression(on bool) Option { return func(g *Generator) { g.compress = on } }

func New(opts ...Option) *Generator {
	g := &Generator{compress: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes the summary PDF for doc to w.
func (g *Generator) Generate(ctx context.Context, doc *domain.ReviewDocument, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetCompression(g.compress)
	pdf.AliasNbPages("{nb}")
	pdf.SetTitle("HR Review - "+doc.Title, true)

	p := &page{pdf: pdf, doc: doc, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	p.start()
	p.identity()
	p.fields()
	p.feedback()
	p.footer()

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render review pdf: %w", err)
	}
	return pdf.Output(w)
}

type page struct {
	pdf *fpdf.Fpdf
	doc *domain.ReviewDocument
	tr  func(string) string
	y   float64
}

func (p *page) contentW() float64 {
	pageW, _ := p.pdf.GetPageSize()
	return pageW - 2*margin
}

// start adds a page and draws the header bar.
func (p *page) start() {
	p.pdf.AddPage()
	w := p.contentW()

	p.pdf.SetFillColor(30, 30, 30)
	p.pdf.Rect(margin, margin, w, 10, "F")
	p.pdf.SetTextColor(255, 255, 255)
	p.pdf.SetFont("Helvetica", "B", 11)
	p.pdf.SetXY(margin+2, margin+1.5)
	p.pdf.CellFormat(w-34, 7, p.tr("HR REVIEW  "+strings.ToUpper(p.doc.Title)), "", 0, "L", false, 0, "")
	p.pdf.SetFont("Helvetica", "", 9)
	p.pdf.CellFormat(30, 7, "Page "+fmt.Sprint(p.pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
	p.y = margin + 14
}

// ensure starts a new page when h more millimetres would run into the footer.
func (p *page) ensure(h float64) {
	_, pageH := p.pdf.GetPageSize()
	if p.y+h > pageH-margin-footerGap {
		p.footer()
		p.start()
	}
}

func (p *page) section(title string) {
	p.ensure(12)
	p.pdf.SetFillColor(240, 240, 240)
	p.pdf.SetFont("Helvetica", "B", 8)
	p.pdf.SetXY(margin, p.y)
	p.pdf.CellFormat(p.contentW(), 5.5, title, "1", 1, "L", true, 0, "")
	p.y += 5.5
}

func (p *page) identity() {
	d := p.doc
	p.section("EMPLOYEE")
	half := p.contentW() / 2
	p.pdf.SetFont("Helvetica", "", 9)
	p.pdf.SetXY(margin, p.y)
	p.pdf.CellFormat(half, 6, p.tr("Employee ID: "+d.EmployeeID), "L", 0, "L", false, 0, "")
	p.pdf.CellFormat(half, 6, p.tr("Application: "+orDash(d.ApplicationID)), "R", 1, "L", false, 0, "")
	p.y += 6
	p.pdf.SetXY(margin, p.y)
	p.pdf.CellFormat(half, 6, p.tr("Form: "+d.FormType), "LB", 0, "L", false, 0, "")
	p.pdf.CellFormat(half, 6, p.tr("Status: "+orDash(d.Status)), "RB", 1, "L", false, 0, "")
	p.y += 10
}

func (p *page) fields() {
	p.section("SUBMITTED INFORMATION")
	w := p.contentW()
	keyW := w * 0.34
	valW := w - keyW

	if len(p.doc.Fields) == 0 {
		p.pdf.SetFont("Helvetica", "I", 8.5)
		p.pdf.SetXY(margin, p.y)
		p.pdf.CellFormat(w, 6.5, "No fields submitted.", "1", 1, "L", false, 0, "")
		p.y += 10.5
		return
	}

	for i, f := range p.doc.Fields {
		p.pdf.SetFont("Helvetica", "", 8.5)
		lines := p.pdf.SplitText(p.tr(orDash(f.Value)), valW-3)
		h := float64(max(1, len(lines)))*lineH + 1.5
		p.ensure(h)

		if i%2 == 0 {
			p.pdf.SetFillColor(250, 250, 250)
		} else {
			p.pdf.SetFillColor(255, 255, 255)
		}
		p.pdf.Rect(margin, p.y, keyW, h, "FD")
		p.pdf.Rect(margin+keyW, p.y, valW, h, "FD")

		p.pdf.SetFont("Helvetica", "B", 8.5)
		p.pdf.SetXY(margin+1.5, p.y+0.75)
		p.pdf.CellFormat(keyW-3, lineH, p.tr(f.Key), "", 0, "L", false, 0, "")

		p.pdf.SetFont("Helvetica", "", 8.5)
		for j, line := range lines {
			p.pdf.SetXY(margin+keyW+1.5, p.y+0.75+float64(j)*lineH)
			p.pdf.CellFormat(valW-3, lineH, line, "", 0, "L", false, 0, "")
		}
		p.y += h
	}
	p.y += 4
}

func (p *page) feedback() {
	p.section("HR FEEDBACK")
	w := p.contentW()
	fb := p.doc.Feedback
	if fb == nil {
		fb = &domain.HRFeedback{}
	}

	p.row("Reviewed at", orDash(fb.ReviewedAt))
	p.row("HR signature", orDash(p.doc.SignatureURL))
	if fb.CompanyRepName != "" || p.doc.CompanyRepSignatureURL != "" {
		p.row("Company representative", orDash(fb.CompanyRepName))
		p.row("Representative signature", orDash(p.doc.CompanyRepSignatureURL))
	}

	p.pdf.SetFont("Helvetica", "", 9)
	lines := p.pdf.SplitText(p.tr(orDash(fb.Comment)), w-4)
	p.ensure(lineH + 2)
	p.pdf.SetFont("Helvetica", "B", 8)
	p.pdf.SetXY(margin, p.y)
	p.pdf.CellFormat(w, lineH, "Comment", "LR", 1, "L", false, 0, "")
	p.y += lineH
	p.pdf.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		p.ensure(lineH)
		p.pdf.SetXY(margin, p.y)
		p.pdf.CellFormat(w, lineH, "  "+line, "LR", 1, "L", false, 0, "")
		p.y += lineH
	}
	p.pdf.Line(margin, p.y, margin+w, p.y)
	p.y += 4
}

func (p *page) row(label, value string) {
	w := p.contentW()
	p.ensure(6)
	p.pdf.SetXY(margin, p.y)
	p.pdf.SetFont("Helvetica", "B", 8)
	p.pdf.CellFormat(w*0.34, 6, label, "L", 0, "L", false, 0, "")
	p.pdf.SetFont("Helvetica", "", 8.5)
	p.pdf.CellFormat(w*0.66, 6, p.tr(truncate(value, 90)), "R", 1, "L", false, 0, "")
	p.y += 6
}

func (p *page) footer() {
	_, pageH := p.pdf.GetPageSize()
	w := p.contentW()
	p.pdf.SetXY(margin, pageH-margin-6)
	p.pdf.SetFont("Helvetica", "I", 7.5)
	p.pdf.SetTextColor(130, 130, 130)
	p.pdf.CellFormat(w/2, 5, "Generated by HR Review Portal", "", 0, "L", false, 0, "")
	p.pdf.CellFormat(w/2, 5, p.tr(p.doc.EmployeeID+" | "+p.doc.FormType+" | "+p.doc.GeneratedAt.Format("Jan 02, 2006 15:04")), "", 0, "R", false, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
