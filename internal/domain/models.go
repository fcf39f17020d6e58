package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Status values for a form submission. The backend may carry others.
const (
	StatusDraft       = "draft"
	StatusUnderReview = "under_review"
	StatusCompleted   = "completed"
)

// HRFeedback is the reviewer's note attached to a form submission.
// Saving replaces the previous value; there is no history.
type HRFeedback struct {
	Comment    string `json:"comment"`
	ReviewedAt string `json:"reviewedAt,omitempty"`
	Signature  string `json:"signature,omitempty"`

	// Counter-signature, non-compete agreement only.
	CompanyRepSignature string `json:"companyRepSignature,omitempty"`
	CompanyRepName      string `json:"companyRepName,omitempty"`
}

// FormData is one form submission exactly as the backend returned it.
// Field sets differ per form type, so it stays a generic JSON object.
type FormData map[string]any

// Feedback decodes the embedded hrFeedback object, if any.
func (f FormData) Feedback() *HRFeedback {
	raw, ok := f["hrFeedback"]
	if !ok || raw == nil {
		return nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var fb HRFeedback
	if err := json.Unmarshal(b, &fb); err != nil {
		return nil
	}
	return &fb
}

// Status returns the submission's workflow status or "".
func (f FormData) Status() string {
	s, _ := f["status"].(string)
	return s
}

// ID returns the submission's own document id, if the backend sent one.
func (f FormData) ID() string {
	s, _ := f["_id"].(string)
	return s
}

// FormField is one displayable key/value pair of a submission.
type FormField struct {
	Key   string
	Value string
}

// Fields flattens the submission for read-only display, sorted by key.
// Review bookkeeping (hrFeedback, status, ids, timestamps) is left out.
func (f FormData) Fields() []FormField {
	out := make([]FormField, 0, len(f))
	for k, v := range f {
		switch k {
		case "hrFeedback", "status", "_id", "__v", "createdAt", "updatedAt":
			continue
		}
		out = append(out, FormField{Key: k, Value: displayValue(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func displayValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Application is the per-employee aggregate held by the onboarding backend.
type Application struct {
	ID                string              `json:"_id"`
	EmployeeID        string              `json:"employeeId"`
	ApplicationStatus string              `json:"applicationStatus"`
	Forms             map[string]FormData `json:"forms"`
}

// Form returns the sub-document stored under forms.<key>.
func (a *Application) Form(key string) (FormData, bool) {
	if a == nil || a.Forms == nil {
		return nil, false
	}
	f, ok := a.Forms[key]
	return f, ok && f != nil
}

// Review outcomes recorded in the journal.
const (
	OutcomeSaved    = "saved"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// ReviewEntry is one save attempt made through the portal.
type ReviewEntry struct {
	ID            string
	EmployeeID    string
	FormType      string
	ApplicationID string
	Endpoint      string
	HRUserID      string
	Comment       string
	Outcome       string
	Message       string
	CreatedAt     time.Time
}

// ReviewDocument is what the PDF summary is rendered from.
type ReviewDocument struct {
	EmployeeID    string
	ApplicationID string
	FormType      string
	Title         string
	Status        string
	Fields        []FormField
	Feedback      *HRFeedback

	// Absolute URLs, already resolved against the asset base.
	SignatureURL           string
	CompanyRepSignatureURL string

	GeneratedAt time.Time
}
