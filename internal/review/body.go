package review

import (
	"time"

	"github.com/csg33k/hr-review-portal/internal/domain"
)

// Draft is everything a save needs, captured at submit time.
type Draft struct {
	FormType      string
	EmployeeID    string
	ApplicationID string
	FormID        string

	Note                string
	Signature           string
	CompanyRepSignature string
	CompanyRepName      string

	FormData   domain.FormData
	ReviewedAt time.Time
}

// Request is a resolved save call.
type Request struct {
	Endpoint string
	Body     map[string]any
}

type bodyBuilder func(d Draft, body map[string]any)

// Build resolves the endpoint and body for d.FormType.
func (t *Table) Build(d Draft) Request {
	if d.FormType == TBSymptomScreen {
		return Request{
			Endpoint: t.Endpoint(TBSymptomScreen),
			Body: map[string]any{
				"userId":    d.EmployeeID,
				"notes":     d.Note,
				"formType":  tbSymptomScreenWireType,
				"timestamp": isoTime(d.ReviewedAt),
			},
		}
	}

	body := map[string]any{
		"applicationId": d.ApplicationID,
		"employeeId":    d.EmployeeID,
		"status":        domain.StatusUnderReview,
	}
	if d.FormID != "" {
		body["formId"] = d.FormID
	}

	build := formDataBody
	if r, ok := routes[d.FormType]; ok {
		build = r.build
	}
	build(d, body)
	return Request{Endpoint: t.Endpoint(d.FormType), Body: body}
}

// BuildRequest is Build on the built-in table.
func BuildRequest(d Draft) Request {
	return defaultTable.Build(d)
}

func feedback(d Draft) domain.HRFeedback {
	return domain.HRFeedback{
		Comment:    d.Note,
		ReviewedAt: isoTime(d.ReviewedAt),
		Signature:  d.Signature,
	}
}

func feedbackBody(d Draft, body map[string]any) {
	body["hrFeedback"] = feedback(d)
}

func counterSignedBody(d Draft, body map[string]any) {
	fb := feedback(d)
	fb.CompanyRepSignature = d.CompanyRepSignature
	fb.CompanyRepName = d.CompanyRepName
	body["hrFeedback"] = fb
}

func educationBody(d Draft, body map[string]any) {
	copyKey(d.FormData, body, "educations")
	body["hrFeedback"] = feedback(d)
}

func referencesBody(d Draft, body map[string]any) {
	copyKey(d.FormData, body, "references")
	body["hrFeedback"] = feedback(d)
}

// copyKey resends a submission list only when the submission has one, so a
// missing list is never posted as null.
func copyKey(src domain.FormData, dst map[string]any, key string) {
	if v, ok := src[key]; ok {
		dst[key] = v
	}
}

// workExperienceBody does not resend the experience list; the backend
// keeps what it already has.
func workExperienceBody(d Draft, body map[string]any) {
	body["hrFeedback"] = feedback(d)
}

// legalDisclosuresBody merges the submission flat over the base body.
// Submission keys replace same-named base keys, except status and
// hrFeedback, which are always the review's own.
func legalDisclosuresBody(d Draft, body map[string]any) {
	for k, v := range d.FormData {
		if k == "hrFeedback" || k == "status" {
			continue
		}
		body[k] = v
	}
	body["hrFeedback"] = feedback(d)
}

// formDataBody is the fallback for form types without a table row. The
// signature is not carried here.
func formDataBody(d Draft, body map[string]any) {
	fd := make(map[string]any, len(d.FormData)+1)
	for k, v := range d.FormData {
		fd[k] = v
	}
	fd["hrFeedback"] = domain.HRFeedback{
		Comment:    d.Note,
		ReviewedAt: isoTime(d.ReviewedAt),
	}
	body["formData"] = fd
}

// isoTime formats t like JavaScript's Date.toISOString.
func isoTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
