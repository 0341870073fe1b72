// Package http provides an HTTP-based implementation of contacts.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/contacts"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 5 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "contacts/1.0 (+https://github.com/fwojciec/contacts)"

// Ensure Fetcher implements contacts.Fetcher at compile time.
var _ contacts.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content using plain HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (5s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and returns its body as UTF-8 text.
// The body is converted from the charset declared in the Content-Type
// header or the document itself. Undeclared bodies that are valid UTF-8
// are returned unchanged.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", contacts.Errorf(contacts.EREQUEST, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", contacts.Errorf(contacts.EHTTP, "%s for %s", resp.Status, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(url, err)
	}

	body, err := decode(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", contacts.Errorf(contacts.EREQUEST, "cannot decode %s: %v", url, err)
	}

	return body, nil
}

// decode converts raw to UTF-8. A body whose charset was only guessed is
// kept as is when it is already valid UTF-8, since the fallback guess is
// windows-1252 whenever the first kilobyte is plain ASCII.
func decode(raw []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(raw)) {
		return string(raw), nil
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// classify maps a transport error onto a fetch error code.
func classify(url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return contacts.Errorf(contacts.ETIMEOUT, "timed out fetching %s", url)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return contacts.Errorf(contacts.ECONNECTION, "cannot connect to %s: %v", url, err)
	}

	return contacts.Errorf(contacts.EREQUEST, "request to %s failed: %v", url, err)
}
