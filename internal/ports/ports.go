package ports

import (
	"context"
	"io"

	"github.com/csg33k/hr-review-portal/internal/domain"
)

// OnboardingAPI is the external onboarding backend.
type OnboardingAPI interface {
	// GetApplication fetches the employee's aggregate. It returns a
	// *domain.NotFoundError when the employee has no application.
	GetApplication(ctx context.Context, employeeID string) (*domain.Application, error)

	// Post sends body as JSON to path (relative to the API base URL).
	// Failures are *domain.NetworkError or *domain.ServerError.
	Post(ctx context.Context, path string, body any) error
}

// ReviewJournal records save attempts made through the portal.
type ReviewJournal interface {
	RecordReview(ctx context.Context, e *domain.ReviewEntry) error
	ListReviews(ctx context.Context, employeeID string) ([]domain.ReviewEntry, error)
}

// ReviewPDFGenerator renders a printable summary of one reviewed form.
type ReviewPDFGenerator interface {
	Generate(ctx context.Context, doc *domain.ReviewDocument, w io.Writer) error
}

// Notifier receives the user-facing result of a save.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
