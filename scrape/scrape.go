// Package scrape runs the fetch, extract, save and render pipeline for a
// single directory page.
package scrape

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/fwojciec/contacts"
)

// Scraper orchestrates one pipeline run. Runs are strictly sequential:
// fetch, extract, persist, render.
type Scraper struct {
	Fetcher   contacts.Fetcher
	Extractor contacts.ContactExtractor
	Contacts  contacts.ContactService
	Renderer  *contacts.TableRenderer

	// Runs records the run history. Optional.
	Runs contacts.RunService

	// RetryDelays are the waits between fetch attempts for transient
	// failures. Nil means a single attempt.
	RetryDelays []time.Duration
}

// Result describes the outcome of a pipeline run.
type Result struct {
	// Contacts holds the extracted contacts in document order,
	// including those whose email was already stored.
	Contacts []*contacts.Contact

	// Inserted is the number of new rows written to storage.
	Inserted int

	// Run is the history entry, when a RunService is configured.
	Run *contacts.Run

	// FetchErr is set when the page could not be fetched. In that case
	// nothing was extracted, stored or rendered.
	FetchErr error
}

// Scrape fetches url, extracts its contacts, saves them and renders the
// table to out.
//
// A fetch failure is not an error of the pipeline: it is reported in
// Result.FetchErr and the run ends with nothing persisted and nothing
// rendered. Storage and render failures are returned.
func (s *Scraper) Scrape(ctx context.Context, url string, out io.Writer) (*Result, error) {
	html, err := FetchWithRetry(ctx, url, s.Fetcher.Fetch, s.RetryDelays)
	if err != nil {
		return &Result{FetchErr: err}, nil
	}

	result := &Result{
		Contacts: slices.Collect(s.Extractor.Extract(html)),
	}

	result.Inserted, err = s.Contacts.SaveContacts(ctx, result.Contacts)
	if err != nil {
		return nil, err
	}

	if s.Runs != nil {
		run := &contacts.Run{
			SourceURL: url,
			Found:     len(result.Contacts),
			Inserted:  result.Inserted,
		}
		if err := s.Runs.CreateRun(ctx, run, html); err != nil {
			return nil, err
		}
		result.Run = run
	}

	if err := s.Renderer.Render(out, result.Contacts); err != nil {
		return nil, err
	}

	return result, nil
}
