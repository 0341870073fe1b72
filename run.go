package contacts

import (
	"context"
	"time"
)

// Run records one successful scrape of a source page.
type Run struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	Found       int       `json:"found"`
	Inserted    int       `json:"inserted"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "run source URL required")
	}
	if r.Inserted > r.Found {
		return Errorf(EINVALID, "run inserted count %d exceeds found count %d", r.Inserted, r.Found)
	}
	return nil
}

// RunService represents a service for the scrape history.
type RunService interface {
	// CreateRun records a run. ID, ContentHash and FetchedAt are assigned
	// by the implementation; ContentHash is computed from content.
	CreateRun(ctx context.Context, run *Run, content string) error

	// FindRuns retrieves runs, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
