package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/csg33k/hr-review-portal/internal/adapters/onboardingapi"
	"github.com/csg33k/hr-review-portal/internal/domain"
	"github.com/csg33k/hr-review-portal/internal/ports"
	"github.com/csg33k/hr-review-portal/internal/review"
	"github.com/csg33k/hr-review-portal/internal/templates"
)

// HRUserHeader optionally names the reviewer when a fronting proxy knows it.
const HRUserHeader = "X-HR-User-ID"

type Handler struct {
	api       ports.OnboardingAPI
	journal   ports.ReviewJournal
	pdf       ports.ReviewPDFGenerator
	table     *review.Table
	assetBase string
	hrUserID  string
	log       *slog.Logger
	now       func() time.Time
}

type Option func(*Handler)

// WithTable sets the endpoint table used for saves.
func WithTable(t *review.Table) Option { return func(h *Handler) { h.table = t } }

// WithAssetBaseURL is the host signature image paths resolve against.
func WithAssetBaseURL(base string) Option { return func(h *Handler) { h.assetBase = base } }

// WithHRUserID is the reviewer id used when the request carries none.
func WithHRUserID(id string) Option { return func(h *Handler) { h.hrUserID = id } }

func WithLogger(l *slog.Logger) Option { return func(h *Handler) { h.log = l } }

// WithClock overrides time.Now for review timestamps.
func WithClock(now func() time.Time) Option { return func(h *Handler) { h.now = now } }

func New(api ports.OnboardingAPI, journal ports.ReviewJournal, pdf ports.ReviewPDFGenerator, opts ...Option) *Handler {
	h := &Handler{
		api:     api,
		journal: journal,
		pdf:     pdf,
		table:   review.NewTable(nil),
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))

	r.Get("/healthz", h.healthz)
	r.Route("/employees/{employeeID}", func(r chi.Router) {
		r.Get("/reviews", h.listReviews)
		r.Get("/forms/{formType}", h.viewForm)
		r.Post("/forms/{formType}/notes", h.saveNote)
		r.Get("/forms/{formType}/pdf", h.formPDF)
	})
	return r
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// ── Form detail ──────────────────────────────────────────────────────────────

func (h *Handler) viewForm(w http.ResponseWriter, r *http.Request) {
	employeeID, formType := chi.URLParam(r, "employeeID"), chi.URLParam(r, "formType")
	ctx := onboardingapi.WithCredentials(r.Context(), r.Cookies())

	app, err := h.application(ctx, employeeID, formType)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.Detail(h.detailView(employeeID, formType, app, "", false)))
}

// application fetches the employee's aggregate. The TB symptom screen is
// not stored on the application, so a missing one is not an error there.
func (h *Handler) application(ctx context.Context, employeeID, formType string) (*domain.Application, error) {
	app, err := h.api.GetApplication(ctx, employeeID)
	var nerr *domain.NotFoundError
	if errors.As(err, &nerr) && formType == review.TBSymptomScreen {
		return &domain.Application{EmployeeID: employeeID}, nil
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (h *Handler) detailView(employeeID, formType string, app *domain.Application, flash string, flashErr bool) templates.DetailView {
	form, ok := app.Form(review.FormsKey(formType))
	v := templates.DetailView{
		EmployeeID:    employeeID,
		FormType:      formType,
		Title:         review.Title(formType),
		ApplicationID: app.ID,
		Status:        form.Status(),
		Submitted:     ok,
		Fields:        form.Fields(),
		Widget:        h.widgetView(employeeID, formType, form, flash, flashErr),
	}
	prev, next := review.Neighbors(formType)
	if prev != "" {
		v.PrevFormType, v.PrevTitle = prev, review.Title(prev)
	}
	if next != "" {
		v.NextFormType, v.NextTitle = next, review.Title(next)
	}
	return v
}

// widgetView seeds the widget from the stored hrFeedback.
func (h *Handler) widgetView(employeeID, formType string, form domain.FormData, flash string, flashErr bool) templates.WidgetView {
	v := templates.WidgetView{
		EmployeeID:    employeeID,
		FormType:      formType,
		FormID:        form.ID(),
		ShowSignature: showSignature(formType),
		CounterSign:   formType == review.NonCompeteAgreement,
		Flash:         flash,
		FlashErr:      flashErr,
	}
	if fb := form.Feedback(); fb != nil {
		v.Note = fb.Comment
		v.ReviewedAt = fb.ReviewedAt
		v.Signature = fb.Signature
		v.CompanyRepName = fb.CompanyRepName
		v.CompanyRepSignature = fb.CompanyRepSignature
	}
	h.resolveSignatures(&v)
	return v
}

func (h *Handler) resolveSignatures(v *templates.WidgetView) {
	v.SignatureURL = review.BuildSignatureURL(h.assetBase, v.Signature)
	v.CompanyRepSignatureURL = review.BuildSignatureURL(h.assetBase, v.CompanyRepSignature)
}

// The TB symptom screen note goes to a separate notes store with no
// signature field.
func showSignature(formType string) bool {
	return formType != review.TBSymptomScreen
}

// ── Note submission ──────────────────────────────────────────────────────────

// flash collects the widget's notification for rendering.
type flash struct {
	msg string
	err bool
}

func (f *flash) Success(msg string) { f.msg, f.err = msg, false }
func (f *flash) Error(msg string)   { f.msg, f.err = msg, true }

func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	employeeID, formType := chi.URLParam(r, "employeeID"), chi.URLParam(r, "formType")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx := onboardingapi.WithCredentials(r.Context(), r.Cookies())

	hrUserID := strings.TrimSpace(r.Header.Get(HRUserHeader))
	if hrUserID == "" {
		hrUserID = h.hrUserID
	}
	draft := draftFromForm(r, formType)

	// The body builders resend parts of the submission, so a save never
	// goes out without the application it was loaded from.
	app, err := h.application(ctx, employeeID, formType)
	if err != nil {
		h.log.Warn("load form before save", "employee_id", employeeID, "form_type", formType, "err", err)
		msg := review.UserMessage(err)
		h.record(ctx, employeeID, formType, hrUserID, draft.Note, nil, err, msg)
		h.renderSaveFailure(w, r, statusFor(err), employeeID, formType, &domain.Application{EmployeeID: employeeID}, draft, msg)
		return
	}
	form, _ := app.Form(review.FormsKey(formType))
	if draft.FormID == "" {
		draft.FormID = form.ID()
	}

	notice := &flash{}
	widget := review.NewWidget(h.api, review.Props{
		FormType:          formType,
		EmployeeID:        employeeID,
		HRUserID:          hrUserID,
		ExistingNote:      draft.Note,
		ExistingSignature: draft.Signature,
		FormData:          form,
		FormID:            draft.FormID,
		ApplicationID:     app.ID,
		ShowSignature:     showSignature(formType),
	},
		review.WithTable(h.table),
		review.WithNotifier(notice),
		review.WithLogger(h.log),
		review.WithClock(h.now),
	)
	widget.SetCompanyRep(draft.CompanyRepSignature, draft.CompanyRepName)

	res, err := widget.Submit(ctx)
	h.record(ctx, employeeID, formType, hrUserID, widget.Note(), res, err, notice.msg)

	if err != nil {
		h.renderSaveFailure(w, r, statusFor(err), employeeID, formType, app, draft, notice.msg)
		return
	}
	if !isHTMX(r) {
		http.Redirect(w, r, templates.FormPath(employeeID, formType, ""), http.StatusSeeOther)
		return
	}
	// Show what the backend now holds.
	if fresh, ferr := h.application(ctx, employeeID, formType); ferr == nil {
		app = fresh
	} else {
		h.log.Warn("reload form after save", "employee_id", employeeID, "form_type", formType, "err", ferr)
	}
	form, _ = app.Form(review.FormsKey(formType))
	render(w, r, http.StatusOK, templates.NoteWidget(h.widgetView(employeeID, formType, form, notice.msg, false)))
}

// noteDraft is what the reviewer posted.
type noteDraft struct {
	Note                string
	Signature           string
	FormID              string
	CompanyRepName      string
	CompanyRepSignature string
}

func draftFromForm(r *http.Request, formType string) noteDraft {
	d := noteDraft{
		Note:      r.FormValue("note"),
		Signature: r.FormValue("signature"),
		FormID:    r.FormValue("form_id"),
	}
	if formType == review.NonCompeteAgreement {
		d.CompanyRepName = r.FormValue("company_rep_name")
		d.CompanyRepSignature = r.FormValue("company_rep_signature")
	}
	return d
}

// renderSaveFailure shows the widget again with what the reviewer typed.
func (h *Handler) renderSaveFailure(w http.ResponseWriter, r *http.Request, status int, employeeID, formType string, app *domain.Application, d noteDraft, msg string) {
	form, _ := app.Form(review.FormsKey(formType))
	v := h.widgetView(employeeID, formType, form, msg, true)
	v.Note = d.Note
	v.Signature = d.Signature
	if d.FormID != "" {
		v.FormID = d.FormID
	}
	if v.CounterSign {
		v.CompanyRepName = d.CompanyRepName
		v.CompanyRepSignature = d.CompanyRepSignature
	}
	h.resolveSignatures(&v)

	if !isHTMX(r) {
		page := h.detailView(employeeID, formType, app, msg, true)
		page.Widget = v
		render(w, r, status, templates.Detail(page))
		return
	}
	render(w, r, status, templates.NoteWidget(v))
}

// record journals a save attempt. It never fails the request.
func (h *Handler) record(ctx context.Context, employeeID, formType, hrUserID, note string, res *review.Result, err error, msg string) {
	e := &domain.ReviewEntry{
		EmployeeID: employeeID,
		FormType:   formType,
		Endpoint:   h.table.Endpoint(formType),
		HRUserID:   hrUserID,
		Comment:    note,
		Outcome:    outcomeFor(err),
		Message:    msg,
		CreatedAt:  h.now(),
	}
	if res != nil {
		e.ApplicationID = res.ApplicationID
		e.Endpoint = res.Endpoint
	}
	if jerr := h.journal.RecordReview(context.WithoutCancel(ctx), e); jerr != nil {
		h.log.Error("journal review", "employee_id", employeeID, "form_type", formType, "err", jerr)
	}
}

func outcomeFor(err error) string {
	var (
		verr *domain.ValidationError
		nerr *domain.NotFoundError
	)
	switch {
	case err == nil:
		return domain.OutcomeSaved
	case errors.As(err, &verr), errors.As(err, &nerr):
		return domain.OutcomeRejected
	}
	return domain.OutcomeFailed
}

func statusFor(err error) int {
	var (
		verr *domain.ValidationError
		nerr *domain.NotFoundError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &nerr):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSubmitInFlight):
		return http.StatusConflict
	}
	return http.StatusBadGateway
}

// ── PDF ──────────────────────────────────────────────────────────────────────

func (h *Handler) formPDF(w http.ResponseWriter, r *http.Request) {
	employeeID, formType := chi.URLParam(r, "employeeID"), chi.URLParam(r, "formType")
	ctx := onboardingapi.WithCredentials(r.Context(), r.Cookies())

	app, err := h.application(ctx, employeeID, formType)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	form, _ := app.Form(review.FormsKey(formType))
	doc := &domain.ReviewDocument{
		EmployeeID:    employeeID,
		ApplicationID: app.ID,
		FormType:      formType,
		Title:         review.Title(formType),
		Status:        form.Status(),
		Fields:        form.Fields(),
		Feedback:      form.Feedback(),
		GeneratedAt:   h.now(),
	}
	if doc.Feedback != nil {
		doc.SignatureURL = review.BuildSignatureURL(h.assetBase, doc.Feedback.Signature)
		doc.CompanyRepSignatureURL = review.BuildSignatureURL(h.assetBase, doc.Feedback.CompanyRepSignature)
	}

	var buf bytes.Buffer
	if err := h.pdf.Generate(r.Context(), doc, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s-review.pdf"`, safeName(employeeID), safeName(formType)))
	w.Write(buf.Bytes())
}

func safeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}

// ── Journal ──────────────────────────────────────────────────────────────────

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	entries, err := h.journal.ListReviews(r.Context(), employeeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	render(w, r, http.StatusOK, templates.Reviews(employeeID, entries))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var nerr *domain.NotFoundError
	if errors.As(err, &nerr) {
		render(w, r, http.StatusNotFound, templates.ErrorPage(http.StatusNotFound, review.MsgNoApplication))
		return
	}
	h.log.Error("load application", "path", r.URL.Path, "err", err)
	msg := review.UserMessage(err)
	var serr *domain.ServerError
	if !errors.As(err, &serr) || serr.UserMessage() == "" {
		msg = "The onboarding service is unavailable. Please try again."
	}
	render(w, r, http.StatusBadGateway, templates.ErrorPage(http.StatusBadGateway, msg))
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
