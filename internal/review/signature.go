package review

import "strings"

const uploadsMarker = "uploads/"

// BuildSignatureURL turns a stored signature path into an absolute URL.
//
// Precedence: absolute URL, path rooted at /uploads/, path with an embedded
// uploads/ segment (rebased from there), anything else relative to base.
func BuildSignatureURL(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if isAbsoluteURL(path) {
		return path
	}
	base = strings.TrimRight(base, "/")
	path = strings.ReplaceAll(path, `\`, "/")

	if strings.HasPrefix(path, "/"+uploadsMarker) {
		return base + path
	}
	if i := strings.Index(path, uploadsMarker); i >= 0 {
		return base + "/" + path[i:]
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:")
}
