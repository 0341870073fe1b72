package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/contacts"
	"github.com/fwojciec/contacts/regexp"
	"github.com/fwojciec/contacts/scrape"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	extractor, err := newExtractor(c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.ErrorMessage(err))
		return err
	}

	s := &scrape.Scraper{
		Fetcher:     deps.Fetcher,
		Extractor:   extractor,
		Contacts:    deps.Contacts,
		Runs:        deps.Runs,
		Renderer:    deps.Renderer,
		RetryDelays: retryDelays(c.Retries),
	}

	result, err := s.Scrape(deps.Ctx, c.URL, deps.Stdout)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.ErrorMessage(err))
		return err
	}

	if result.FetchErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.FetchErrorMessage(result.FetchErr))
		return result.FetchErr
	}

	fmt.Fprintf(deps.Stderr, "Found %d contacts, %d new\n", len(result.Contacts), result.Inserted)
	return nil
}

// newExtractor returns the default extractor, or one for pattern if set.
func newExtractor(pattern string) (contacts.ContactExtractor, error) {
	if pattern == "" {
		return regexp.NewExtractor(), nil
	}
	return regexp.NewExtractorWithPattern(pattern)
}

// retryDelays returns n doubling delays starting at one second.
func retryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}
