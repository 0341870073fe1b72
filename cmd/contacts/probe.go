package main

import (
	"fmt"

	"github.com/fwojciec/contacts"
	"github.com/fwojciec/contacts/goquery"
)

// Run executes the probe command. It fetches the page once and reports how
// many member blocks the DOM contains against how many contacts the
// extraction pattern recovers. Nothing is stored.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	extractor, err := newExtractor(c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.FetchErrorMessage(err))
		return err
	}

	counter := deps.Blocks
	if c.Selector != "" {
		counter = goquery.NewBlockCounterWithSelector(c.Selector)
	}

	blocks, err := counter.CountBlocks(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.ErrorMessage(err))
		return err
	}

	extracted, withEmail := 0, 0
	for contact := range extractor.Extract(html) {
		extracted++
		if contact.Email != "" {
			withEmail++
		}
	}

	fmt.Fprintf(deps.Stdout, "blocks:     %d\n", blocks)
	fmt.Fprintf(deps.Stdout, "extracted:  %d\n", extracted)
	fmt.Fprintf(deps.Stdout, "with email: %d\n", withEmail)

	if extracted != blocks {
		fmt.Fprintf(deps.Stderr, "warning: pattern matched %d of %d blocks; the page markup may have changed\n", extracted, blocks)
	}

	return nil
}
