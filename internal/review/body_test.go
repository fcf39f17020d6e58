package review_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/csg33k/hr-review-portal/internal/domain"
	"github.com/csg33k/hr-review-portal/internal/review"
)

var savedAt = time.Date(2024, 3, 9, 14, 30, 5, 123_000_000, time.UTC)

func draft(formType string, data domain.FormData) review.Draft {
	return review.Draft{
		FormType:      formType,
		EmployeeID:    "E1",
		ApplicationID: "app-1",
		Note:          "looks good",
		Signature:     "/uploads/sig.png",
		FormData:      data,
		ReviewedAt:    savedAt,
	}
}

func feedbackOf(t *testing.T, body map[string]any) domain.HRFeedback {
	t.Helper()
	fb, ok := body["hrFeedback"].(domain.HRFeedback)
	if !ok {
		t.Fatalf("hrFeedback missing or wrong type: %#v", body["hrFeedback"])
	}
	return fb
}

func TestBuild_BaseFields(t *testing.T) {
	d := draft("background-check", nil)
	d.FormID = "form-9"
	body := review.BuildRequest(d).Body

	want := map[string]any{
		"applicationId": "app-1",
		"employeeId":    "E1",
		"status":        "under_review",
		"formId":        "form-9",
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %#v, want %#v", k, body[k], v)
		}
	}

	body = review.BuildRequest(draft("background-check", nil)).Body
	if _, ok := body["formId"]; ok {
		t.Error("formId must be omitted when empty")
	}
}

func TestBuild_PureFeedbackForms(t *testing.T) {
	for _, ft := range []string{
		"background-check", "w4", "w4-form", "w9", "w9-form", "i9", "i9-form",
		"service-delivery-policies", "orientation-presentation", "job-description",
		"code-of-ethics", "misconduct-statement", "drivingLicense", "employeeDetailsUpload",
	} {
		t.Run(ft, func(t *testing.T) {
			d := draft(ft, domain.FormData{"ssn": "123"})
			d.CompanyRepSignature = "/uploads/rep.png"
			d.CompanyRepName = "Pat Rep"
			body := review.BuildRequest(d).Body

			fb := feedbackOf(t, body)
			want := domain.HRFeedback{
				Comment:    "looks good",
				ReviewedAt: "2024-03-09T14:30:05.123Z",
				Signature:  "/uploads/sig.png",
			}
			if fb != want {
				t.Errorf("hrFeedback = %+v, want %+v", fb, want)
			}
			if _, ok := body["ssn"]; ok {
				t.Error("pure feedback forms must not echo form fields")
			}
			if len(body) != 4 {
				t.Errorf("unexpected keys in body: %v", body)
			}
		})
	}
}

func TestBuild_NonCompeteAddsCounterSignature(t *testing.T) {
	d := draft("non-compete-agreement", nil)
	d.CompanyRepSignature = "/uploads/rep.png"
	d.CompanyRepName = "Pat Rep"
	fb := feedbackOf(t, review.BuildRequest(d).Body)

	if fb.CompanyRepSignature != "/uploads/rep.png" || fb.CompanyRepName != "Pat Rep" {
		t.Errorf("counter-signature not carried: %+v", fb)
	}
	if fb.Comment != "looks good" || fb.Signature != "/uploads/sig.png" {
		t.Errorf("base feedback lost: %+v", fb)
	}
}

func TestBuild_Education(t *testing.T) {
	educations := []any{
		map[string]any{"school": "State U", "degree": "BSc"},
	}
	d := draft("education", domain.FormData{
		"educations": educations,
		"highSchool": "Central",
	})
	body := review.BuildRequest(d).Body

	if !reflect.DeepEqual(body["educations"], educations) {
		t.Errorf("educations = %#v, want %#v", body["educations"], educations)
	}
	if _, ok := body["highSchool"]; ok {
		t.Error("education body must only echo educations")
	}
	if _, ok := body["formData"]; ok {
		t.Error("education body must not carry formData")
	}
	feedbackOf(t, body)
}

func TestBuild_References(t *testing.T) {
	refs := []any{map[string]any{"name": "Ann"}}
	body := review.BuildRequest(draft("references", domain.FormData{"references": refs})).Body
	if !reflect.DeepEqual(body["references"], refs) {
		t.Errorf("references = %#v", body["references"])
	}
	feedbackOf(t, body)
}

func TestBuild_ListsOmittedWhenSubmissionHasNone(t *testing.T) {
	for formType, key := range map[string]string{
		"education":  "educations",
		"references": "references",
	} {
		for name, data := range map[string]domain.FormData{
			"nil form data": nil,
			"key missing":   {"highSchool": "Central"},
		} {
			body := review.BuildRequest(draft(formType, data)).Body
			if v, ok := body[key]; ok {
				t.Errorf("%s/%s: body carries %s = %#v", formType, name, key, v)
			}
			feedbackOf(t, body)
		}
	}
}

func TestBuild_WorkExperienceNeverResendsList(t *testing.T) {
	d := draft("work-experience", domain.FormData{
		"workExperiences": []any{map[string]any{"employer": "Acme"}},
	})
	body := review.BuildRequest(d).Body
	if _, ok := body["workExperiences"]; ok {
		t.Error("work-experience body must not contain workExperiences")
	}
	if _, ok := body["formData"]; ok {
		t.Error("work-experience body must not contain formData")
	}
	feedbackOf(t, body)
}

func TestBuild_LegalDisclosuresMergesFlat(t *testing.T) {
	data := domain.FormData{
		"hasConvictions": false,
		"explanation":    "n/a",
		"signedDate":     "2024-03-01",
		"status":         "draft",
		"hrFeedback":     map[string]any{"comment": "old note"},
		"employeeId":     "someone-else",
	}
	body := review.BuildRequest(draft("legal-disclosures", data)).Body

	for _, k := range []string{"hasConvictions", "explanation", "signedDate", "employeeId"} {
		if _, ok := body[k]; !ok {
			t.Errorf("body missing form key %q", k)
		}
	}
	if body["status"] != "under_review" {
		t.Errorf("prior status leaked into body: %#v", body["status"])
	}
	if fb := feedbackOf(t, body); fb.Comment != "looks good" {
		t.Errorf("prior hrFeedback leaked into body: %+v", fb)
	}
	if body["employeeId"] != "someone-else" {
		t.Errorf("submission keys should replace base keys, employeeId = %#v", body["employeeId"])
	}
	if body["applicationId"] != "app-1" {
		t.Errorf("applicationId = %#v", body["applicationId"])
	}
}

func TestBuild_FallbackWrapsFormData(t *testing.T) {
	data := domain.FormData{"contactName": "Sam", "hrFeedback": map[string]any{"comment": "old"}}
	req := review.BuildRequest(draft("emergency-contact", data))

	if req.Endpoint != "/onboarding/save-emergency-contact" {
		t.Errorf("endpoint = %q", req.Endpoint)
	}
	fd, ok := req.Body["formData"].(map[string]any)
	if !ok {
		t.Fatalf("formData missing: %#v", req.Body)
	}
	if fd["contactName"] != "Sam" {
		t.Errorf("formData.contactName = %#v", fd["contactName"])
	}
	fb, ok := fd["hrFeedback"].(domain.HRFeedback)
	if !ok {
		t.Fatalf("formData.hrFeedback wrong type: %#v", fd["hrFeedback"])
	}
	if fb.Comment != "looks good" || fb.ReviewedAt != "2024-03-09T14:30:05.123Z" {
		t.Errorf("fallback feedback = %+v", fb)
	}
	if fb.Signature != "" {
		t.Error("fallback branch must not carry the signature")
	}
	if _, ok := req.Body["hrFeedback"]; ok {
		t.Error("fallback branch must nest hrFeedback inside formData")
	}
	// The caller's form data is not mutated.
	if m, _ := data["hrFeedback"].(map[string]any); m["comment"] != "old" {
		t.Error("input form data was modified")
	}
}

func TestBuild_TBSymptomScreen(t *testing.T) {
	d := draft("tbSymptomScreen", nil)
	d.Note = "ok"
	req := review.BuildRequest(d)

	if req.Endpoint != "/onboarding/submit-notes" {
		t.Errorf("endpoint = %q", req.Endpoint)
	}
	want := map[string]any{
		"userId":    "E1",
		"notes":     "ok",
		"formType":  "TBSymptomScreen",
		"timestamp": "2024-03-09T14:30:05.123Z",
	}
	if !reflect.DeepEqual(req.Body, want) {
		t.Errorf("body = %#v, want %#v", req.Body, want)
	}
}
