// Package review implements the HR note submission widget: it validates a
// reviewer note, resolves the backend endpoint and body shape for the form
// type under review, posts it, and mirrors the note to the employee
// dashboard.
package review

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// SubmitNotesPath receives tbSymptomScreen notes.
	SubmitNotesPath = "/onboarding/submit-notes"
	// SaveHRNotesPath mirrors a note onto the employee dashboard.
	SaveHRNotesPath = "/onboarding/save-hr-notes-to-employee"

	tbSymptomScreenWireType = "TBSymptomScreen"
)

// route is one row of the dispatch table.
type route struct {
	path     string
	formsKey string
	title    string
	build    bodyBuilder
}

var routes = map[string]route{
	"background-check":          {"/onboarding/save-background-check", "backgroundCheck", "Background Check", feedbackBody},
	"w4":                        {"/onboarding/save-w4-form", "w4Form", "Form W-4", feedbackBody},
	"w4-form":                   {"/onboarding/save-w4-form", "w4Form", "Form W-4", feedbackBody},
	"w9":                        {"/onboarding/save-w9-form", "w9Form", "Form W-9", feedbackBody},
	"w9-form":                   {"/onboarding/save-w9-form", "w9Form", "Form W-9", feedbackBody},
	"i9":                        {"/onboarding/save-i9-form", "i9Form", "Form I-9", feedbackBody},
	"i9-form":                   {"/onboarding/save-i9-form", "i9Form", "Form I-9", feedbackBody},
	"service-delivery-policies": {"/onboarding/save-service-delivery-policy", "serviceDeliveryPolicy", "Service Delivery Policies", feedbackBody},
	"orientation-presentation":  {"/onboarding/save-orientation-presentation", "orientationPresentation", "Orientation Presentation", feedbackBody},
	"job-description":           {"/onboarding/save-job-description", "jobDescription", "Job Description", feedbackBody},
	"code-of-ethics":            {"/onboarding/save-code-of-ethics", "codeOfEthics", "Code of Ethics", feedbackBody},
	"misconduct-statement":      {"/onboarding/save-misconduct-statement", "misconductStatement", "Misconduct Statement", feedbackBody},
	"drivingLicense":            {"/onboarding/save-driving-license", "drivingLicense", "Driving License", feedbackBody},
	"employeeDetailsUpload":     {"/onboarding/save-employee-details-upload", "employeeDetailsUpload", "Employee Details Upload", feedbackBody},
	"non-compete-agreement":     {"/onboarding/save-non-compete-agreement", "nonCompeteAgreement", "Non-Compete Agreement", counterSignedBody},
	"education":                 {"/onboarding/save-education", "education", "Education", educationBody},
	"references":                {"/onboarding/save-references", "references", "References", referencesBody},
	"work-experience":           {"/onboarding/save-work-experience", "workExperience", "Work Experience", workExperienceBody},
	"legal-disclosures":         {"/onboarding/save-legal-disclosures", "legalDisclosures", "Legal Disclosures", legalDisclosuresBody},
}

// formOrder is the onboarding packet order used for prev/next navigation.
var formOrder = []string{
	"employeeDetailsUpload",
	"background-check",
	"i9-form",
	"w4-form",
	"w9-form",
	"education",
	"work-experience",
	"references",
	"legal-disclosures",
	"code-of-ethics",
	"non-compete-agreement",
	"misconduct-statement",
	"service-delivery-policies",
	"orientation-presentation",
	"job-description",
	"drivingLicense",
	"tbSymptomScreen",
}

// Table resolves form types to save endpoints. Overrides replace the path
// of a form type but never its body shape.
type Table struct {
	overrides map[string]string
}

// NewTable returns a table with optional per-form-type path overrides.
func NewTable(overrides map[string]string) *Table {
	o := make(map[string]string, len(overrides))
	for k, v := range overrides {
		if v = strings.TrimSpace(v); v != "" {
			o[k] = "/" + strings.TrimPrefix(v, "/")
		}
	}
	return &Table{overrides: o}
}

var defaultTable = NewTable(nil)

// Endpoint returns the save path for formType.
func (t *Table) Endpoint(formType string) string {
	if p, ok := t.overrides[formType]; ok {
		return p
	}
	if formType == TBSymptomScreen {
		return SubmitNotesPath
	}
	if r, ok := routes[formType]; ok {
		return r.path
	}
	return "/onboarding/save-" + formType
}

// ResolveEndpoint is Endpoint on the built-in table.
func ResolveEndpoint(formType string) string {
	return defaultTable.Endpoint(formType)
}

// TBSymptomScreen is the form type that posts to SubmitNotesPath.
const TBSymptomScreen = "tbSymptomScreen"

// FormsKey names the application's forms.<key> sub-document for formType.
func FormsKey(formType string) string {
	if r, ok := routes[formType]; ok {
		return r.formsKey
	}
	return camelCase(formType)
}

// Title is a human label for formType.
func Title(formType string) string {
	if r, ok := routes[formType]; ok {
		return r.title
	}
	if formType == TBSymptomScreen {
		return "TB Symptom Screen"
	}
	words := strings.FieldsFunc(formType, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Known reports whether formType has a dedicated row in the table.
func Known(formType string) bool {
	_, ok := routes[formType]
	return ok || formType == TBSymptomScreen
}

// FormOrder returns the canonical form types in packet order.
func FormOrder() []string {
	out := make([]string, len(formOrder))
	copy(out, formOrder)
	return out
}

// Neighbors returns the form types before and after formType in packet
// order. Either is "" at the ends or when formType is not in the order.
func Neighbors(formType string) (prev, next string) {
	for i, ft := range formOrder {
		if ft != formType {
			continue
		}
		if i > 0 {
			prev = formOrder[i-1]
		}
		if i < len(formOrder)-1 {
			next = formOrder[i+1]
		}
		return prev, next
	}
	return "", ""
}

// camelCase turns "emergency-contact" into "emergencyContact".
func camelCase(s string) string {
	var b strings.Builder
	upper := false
	for _, r := range s {
		if r == '-' || r == '_' || r == ' ' {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
