package review_test

import (
	"testing"
	"unicode/utf8"

	"github.com/csg33k/hr-review-portal/internal/review"
)

func TestResolveEndpoint_Table(t *testing.T) {
	cases := []struct {
		formType string
		want     string
	}{
		{"background-check", "/onboarding/save-background-check"},
		{"w4", "/onboarding/save-w4-form"},
		{"w4-form", "/onboarding/save-w4-form"},
		{"w9", "/onboarding/save-w9-form"},
		{"w9-form", "/onboarding/save-w9-form"},
		{"i9", "/onboarding/save-i9-form"},
		{"i9-form", "/onboarding/save-i9-form"},
		{"service-delivery-policies", "/onboarding/save-service-delivery-policy"},
		{"orientation-presentation", "/onboarding/save-orientation-presentation"},
		{"job-description", "/onboarding/save-job-description"},
		{"code-of-ethics", "/onboarding/save-code-of-ethics"},
		{"misconduct-statement", "/onboarding/save-misconduct-statement"},
		{"drivingLicense", "/onboarding/save-driving-license"},
		{"employeeDetailsUpload", "/onboarding/save-employee-details-upload"},
		{"non-compete-agreement", "/onboarding/save-non-compete-agreement"},
		{"education", "/onboarding/save-education"},
		{"references", "/onboarding/save-references"},
		{"work-experience", "/onboarding/save-work-experience"},
		{"legal-disclosures", "/onboarding/save-legal-disclosures"},
		{"tbSymptomScreen", "/onboarding/submit-notes"},
	}
	for _, tc := range cases {
		t.Run(tc.formType, func(t *testing.T) {
			if got := review.ResolveEndpoint(tc.formType); got != tc.want {
				t.Errorf("ResolveEndpoint(%q) = %q, want %q", tc.formType, got, tc.want)
			}
		})
	}
}

func TestResolveEndpoint_UnmappedFallsBack(t *testing.T) {
	for _, ft := range []string{"emergency-contact", "direct-deposit", "x"} {
		want := "/onboarding/save-" + ft
		if got := review.ResolveEndpoint(ft); got != want {
			t.Errorf("ResolveEndpoint(%q) = %q, want %q", ft, got, want)
		}
	}
}

func TestTable_OverridesReplacePathOnly(t *testing.T) {
	tbl := review.NewTable(map[string]string{
		"education":         "onboarding/v2/save-education",
		"code-of-ethics":    "  ",
		"emergency-contact": "/onboarding/save-emergency",
	})

	if got := tbl.Endpoint("education"); got != "/onboarding/v2/save-education" {
		t.Errorf("education override: got %q", got)
	}
	// Blank overrides are ignored.
	if got := tbl.Endpoint("code-of-ethics"); got != "/onboarding/save-code-of-ethics" {
		t.Errorf("blank override should be ignored, got %q", got)
	}
	if got := tbl.Endpoint("emergency-contact"); got != "/onboarding/save-emergency" {
		t.Errorf("unmapped override: got %q", got)
	}

	req := tbl.Build(review.Draft{
		FormType:   "education",
		EmployeeID: "E1",
		Note:       "ok",
		FormData:   map[string]any{"educations": []any{"BSc"}},
	})
	if req.Endpoint != "/onboarding/v2/save-education" {
		t.Errorf("Build endpoint = %q", req.Endpoint)
	}
	if _, ok := req.Body["educations"]; !ok {
		t.Error("override must keep the education body shape")
	}
}

func TestFormsKey(t *testing.T) {
	cases := map[string]string{
		"education":         "education",
		"i9-form":           "i9Form",
		"i9":                "i9Form",
		"background-check":  "backgroundCheck",
		"legal-disclosures": "legalDisclosures",
		"emergency-contact": "emergencyContact",
		"tbSymptomScreen":   "tbSymptomScreen",
	}
	for ft, want := range cases {
		if got := review.FormsKey(ft); got != want {
			t.Errorf("FormsKey(%q) = %q, want %q", ft, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := review.Title("i9-form"); got != "Form I-9" {
		t.Errorf("Title(i9-form) = %q", got)
	}
	if got := review.Title("emergency-contact"); got != "Emergency Contact" {
		t.Errorf("Title(emergency-contact) = %q", got)
	}
	if got := review.Title("tbSymptomScreen"); got != "TB Symptom Screen" {
		t.Errorf("Title(tbSymptomScreen) = %q", got)
	}
}

func TestTitle_MultiByteFirstRune(t *testing.T) {
	got := review.Title("école-form")
	if !utf8.ValidString(got) {
		t.Fatalf("Title returned invalid UTF-8: %q", got)
	}
	if got != "École Form" {
		t.Errorf("Title(école-form) = %q", got)
	}
}

func TestNeighbors(t *testing.T) {
	order := review.FormOrder()
	first, last := order[0], order[len(order)-1]

	prev, next := review.Neighbors(first)
	if prev != "" || next != order[1] {
		t.Errorf("Neighbors(%q) = (%q, %q)", first, prev, next)
	}
	prev, next = review.Neighbors(last)
	if prev != order[len(order)-2] || next != "" {
		t.Errorf("Neighbors(%q) = (%q, %q)", last, prev, next)
	}
	prev, next = review.Neighbors("not-a-form")
	if prev != "" || next != "" {
		t.Errorf("unknown form should have no neighbours, got (%q, %q)", prev, next)
	}
	for _, ft := range order {
		if !review.Known(ft) {
			t.Errorf("form %q is in the packet order but not in the table", ft)
		}
	}
}
