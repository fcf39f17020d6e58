package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/csg33k/hr-review-portal/internal/domain"
	"github.com/csg33k/hr-review-portal/internal/ports"
)

// Messages shown to the reviewer.
const (
	MsgSaved         = "Note saved successfully."
	MsgEmptyNote     = "Please enter a note before saving."
	MsgNoApplication = "No onboarding application found for this employee."
	MsgSaveFailed    = "Failed to save note. Please try again."
)

// NonCompeteAgreement is the only form type with a counter-signature.
const NonCompeteAgreement = "non-compete-agreement"

// State is the widget's position in a save.
type State int

const (
	Idle State = iota
	Validating
	ResolvingApplication
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case ResolvingApplication:
		return "resolving_application"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Props is the configuration passed in by the hosting page.
type Props struct {
	FormType   string
	EmployeeID string
	// HRUserID identifies the reviewer on the dashboard mirror call.
	HRUserID string

	ExistingNote       string
	ExistingReviewedAt string
	ExistingSignature  string

	FormData domain.FormData
	FormID   string
	// ApplicationID, when the host page already loaded the application,
	// replaces the save-time lookup.
	ApplicationID string

	ShowSignature bool

	// Non-compete agreement only.
	CompanyRepSignature string
	CompanyRepName      string
	OnCompanyRepChange  func(signature, name string)

	OnNoteSaved func()
}

// Result describes a completed save.
type Result struct {
	ApplicationID string
	Endpoint      string
	ReviewedAt    string
}

// Widget holds one reviewer's in-progress note for one form.
type Widget struct {
	api           ports.OnboardingAPI
	table         *Table
	notify        ports.Notifier
	log           *slog.Logger
	now           func() time.Time
	onStateChange func(State)

	mu        sync.Mutex
	props     Props
	note      string
	signature string
	repSig    string
	repName   string
	state     State
	sending   bool
}

// Option configures a Widget.
type Option func(*Widget)

// WithTable replaces the built-in endpoint table.
func WithTable(t *Table) Option { return func(w *Widget) { w.table = t } }

// WithNotifier receives success and failure messages.
func WithNotifier(n ports.Notifier) Option { return func(w *Widget) { w.notify = n } }

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l *slog.Logger) Option { return func(w *Widget) { w.log = l } }

// WithClock overrides time.Now for reviewedAt stamps.
func WithClock(now func() time.Time) Option { return func(w *Widget) { w.now = now } }

// WithStateObserver is called on every state transition.
func WithStateObserver(fn func(State)) Option { return func(w *Widget) { w.onStateChange = fn } }

// NewWidget seeds a widget from props.
func NewWidget(api ports.OnboardingAPI, props Props, opts ...Option) *Widget {
	w := &Widget{
		api:       api,
		table:     defaultTable,
		notify:    discardNotifier{},
		log:       slog.Default(),
		now:       time.Now,
		props:     props,
		note:      props.ExistingNote,
		signature: props.ExistingSignature,
		repSig:    props.CompanyRepSignature,
		repName:   props.CompanyRepName,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Widget) SetNote(note string) {
	w.mu.Lock()
	w.note = note
	w.mu.Unlock()
}

func (w *Widget) Note() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.note
}

// SetSignature stores the path produced by the signature capture control.
func (w *Widget) SetSignature(path string) {
	w.mu.Lock()
	w.signature = path
	w.mu.Unlock()
}

func (w *Widget) Signature() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.signature
}

// SetCompanyRep updates the counter-signature. It is ignored for every
// form type but the non-compete agreement.
func (w *Widget) SetCompanyRep(signature, name string) {
	w.mu.Lock()
	if w.props.FormType != NonCompeteAgreement {
		w.mu.Unlock()
		return
	}
	w.repSig, w.repName = signature, name
	cb := w.props.OnCompanyRepChange
	w.mu.Unlock()
	if cb != nil {
		cb(signature, name)
	}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Sending reports whether a save is in flight.
func (w *Widget) Sending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sending
}

// Submit validates the note, posts it to the form type's endpoint and
// mirrors it to the employee dashboard. Errors are reported to the
// notifier and returned.
func (w *Widget) Submit(ctx context.Context) (*Result, error) {
	w.mu.Lock()
	if w.sending {
		w.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	w.sending = true
	d := Draft{
		FormType:            w.props.FormType,
		EmployeeID:          w.props.EmployeeID,
		ApplicationID:       w.props.ApplicationID,
		FormID:              w.props.FormID,
		Note:                w.note,
		Signature:           w.signature,
		CompanyRepSignature: w.repSig,
		CompanyRepName:      w.repName,
		FormData:            w.props.FormData,
	}
	w.mu.Unlock()

	res, err := w.submit(ctx, d)

	if err != nil {
		w.setState(Failed)
		w.notify.Error(UserMessage(err))
	} else {
		w.setState(Success)
		w.notify.Success(MsgSaved)
	}

	w.mu.Lock()
	w.sending = false
	cb := w.props.OnNoteSaved
	w.mu.Unlock()
	w.setState(Idle)

	if err == nil && cb != nil {
		cb()
	}
	return res, err
}

func (w *Widget) submit(ctx context.Context, d Draft) (*Result, error) {
	w.setState(Validating)
	if strings.TrimSpace(d.Note) == "" {
		return nil, &domain.ValidationError{Field: "note", Message: "must not be blank"}
	}
	if d.EmployeeID == "" {
		return nil, &domain.ValidationError{Field: "employeeId", Message: "is required"}
	}
	d.ReviewedAt = w.now()

	if d.FormType != TBSymptomScreen && d.ApplicationID == "" {
		w.setState(ResolvingApplication)
		appID, err := w.resolveApplication(ctx, d.EmployeeID)
		if err != nil {
			return nil, err
		}
		d.ApplicationID = appID
	}

	w.setState(Submitting)
	req := w.table.Build(d)
	if err := w.api.Post(ctx, req.Endpoint, req.Body); err != nil {
		return nil, err
	}

	if d.FormType != TBSymptomScreen {
		w.mirror(ctx, d)
	}
	return &Result{
		ApplicationID: d.ApplicationID,
		Endpoint:      req.Endpoint,
		ReviewedAt:    isoTime(d.ReviewedAt),
	}, nil
}

func (w *Widget) resolveApplication(ctx context.Context, employeeID string) (string, error) {
	app, err := w.api.GetApplication(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if app == nil || app.ID == "" {
		return "", &domain.NotFoundError{EmployeeID: employeeID}
	}
	return app.ID, nil
}

// mirror copies the note to the employee dashboard. It never fails the save.
func (w *Widget) mirror(ctx context.Context, d Draft) {
	w.mu.Lock()
	hrUserID := w.props.HRUserID
	w.mu.Unlock()
	body := map[string]any{
		"applicationId": d.ApplicationID,
		"note":          d.Note,
		"hrUserId":      hrUserID,
		"signature":     d.Signature,
	}
	if err := w.api.Post(ctx, SaveHRNotesPath, body); err != nil {
		w.log.Warn("mirror note to employee dashboard failed",
			"employee_id", d.EmployeeID, "form_type", d.FormType, "err", err)
	}
}

func (w *Widget) setState(s State) {
	w.mu.Lock()
	w.state = s
	fn := w.onStateChange
	w.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

// UserMessage maps a Submit error to the text shown to the reviewer.
func UserMessage(err error) string {
	var (
		verr *domain.ValidationError
		nerr *domain.NotFoundError
		serr *domain.ServerError
	)
	switch {
	case err == nil:
		return MsgSaved
	case errors.As(err, &verr):
		if verr.Field == "note" {
			return MsgEmptyNote
		}
		return verr.Error()
	case errors.As(err, &nerr):
		return MsgNoApplication
	case errors.As(err, &serr):
		if m := serr.UserMessage(); m != "" {
			return m
		}
	case errors.Is(err, domain.ErrSubmitInFlight):
		return err.Error()
	}
	return MsgSaveFailed
}

type discardNotifier struct{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Error(string)   {}
