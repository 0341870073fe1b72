package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/contacts"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ contacts.RunService = (*RunService)(nil)

// RunService implements contacts.RunService using SQLite.
// The runs table is created by ContactService.Initialize.
type RunService struct {
	path string
}

// NewRunService creates a new RunService for the database at path.
func NewRunService(path string) *RunService {
	return &RunService{path: path}
}

// CreateRun records a run, assigning its ID, content hash and fetch time.
func (s *RunService) CreateRun(ctx context.Context, run *contacts.Run, content string) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.ContentHash = hashContent(content)
	run.FetchedAt = time.Now().UTC()

	return withDB(s.path, func(db *DB) error {
		_, err := db.ExecContext(ctx, `
			INSERT INTO runs (id, source_url, content_hash, found, inserted, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, run.SourceURL, run.ContentHash, run.Found, run.Inserted,
			run.FetchedAt.Format(timeFormat))
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}
		return nil
	})
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter contacts.RunFilter) ([]*contacts.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, found, inserted, fetched_at FROM runs WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	var runs []*contacts.Run
	err := withDB(s.path, func(db *DB) error {
		rows, err := db.QueryContext(ctx, query.String(), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var run contacts.Run
			var fetchedAt string
			if err := rows.Scan(&run.ID, &run.SourceURL, &run.ContentHash, &run.Found, &run.Inserted, &fetchedAt); err != nil {
				return err
			}
			if run.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
				return err
			}
			runs = append(runs, &run)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}
