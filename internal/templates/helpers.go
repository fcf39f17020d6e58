package templates

import (
	"net/url"
	"strconv"
	"time"
)

// FormPath builds /employees/{id}/forms/{formType}[/suffix].
func FormPath(employeeID, formType, suffix string) string {
	p := "/employees/" + url.PathEscape(employeeID) + "/forms/" + url.PathEscape(formType)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// ReviewsPath is the journal listing for one employee.
func ReviewsPath(employeeID string) string {
	return "/employees/" + url.PathEscape(employeeID) + "/reviews"
}

// displayTime renders an ISO timestamp from the backend for humans,
// falling back to the raw value when it does not parse.
func displayTime(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 02, 2006 15:04 MST")
}

func entryTime(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04")
}

func errorTitle(status int) string {
	return "Error " + strconv.Itoa(status)
}
