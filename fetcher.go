package contacts

import "context"

// Fetcher retrieves page content from URLs.
type Fetcher interface {
	// Fetch retrieves the page and returns its body decoded as UTF-8 text.
	// Failures carry one of the fetch error codes: EHTTP, ECONNECTION,
	// ETIMEOUT or EREQUEST.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
