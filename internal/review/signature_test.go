package review_test

import (
	"testing"

	"github.com/csg33k/hr-review-portal/internal/review"
)

func TestBuildSignatureURL(t *testing.T) {
	const base = "http://api.local:5000"
	cases := []struct {
		name string
		base string
		path string
		want string
	}{
		{"rooted uploads", base, "/uploads/x.png", base + "/uploads/x.png"},
		{"absolute http", base, "http://host/x.png", "http://host/x.png"},
		{"absolute https", base, "https://cdn.example.com/s/x.png", "https://cdn.example.com/s/x.png"},
		{"data uri", base, "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"embedded marker", base, "foo/uploads/bar.png", base + "/uploads/bar.png"},
		{"embedded marker absolute fs path", base, "/var/app/uploads/signatures/a.png", base + "/uploads/signatures/a.png"},
		{"windows separators", base, `C:\srv\uploads\sig.png`, base + "/uploads/sig.png"},
		{"plain relative", base, "bar.png", base + "/bar.png"},
		{"rooted non-upload", base, "/static/bar.png", base + "/static/bar.png"},
		{"base trailing slash", base + "/", "/uploads/x.png", base + "/uploads/x.png"},
		{"empty", base, "", ""},
		{"whitespace", base, "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := review.BuildSignatureURL(tc.base, tc.path); got != tc.want {
				t.Errorf("BuildSignatureURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
			}
		})
	}
}
