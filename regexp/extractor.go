// Package regexp implements contacts.ContactExtractor with a single
// multi-group regular expression over the raw page text.
package regexp

import (
	"iter"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/fwojciec/contacts"
)

// DefaultPattern matches one member block of a faculty directory page.
//
// The name is followed, after any amount of markup, by the labelled title
// section and then the labelled email section. The mailto anchor inside
// the email section is optional; when it is missing the email group does
// not participate in the match. (?s) lets every gap and capture span lines.
const DefaultPattern = `(?s)` +
	`<div class="member_name"><a [^>]*>(?P<name>.*?)</a>.*?` +
	`<div class="member_info_title"><i class="fas fa-briefcase"></i>職稱</div>\s*` +
	`<div class="member_info_content">(?P<title>.*?)</div>.*?` +
	`<div class="member_info_title"><i class="fas fa-envelope"></i>信箱</div>\s*` +
	`(?:<div class="member_info_content"><a href="mailto://[^"]+">(?P<email>[^<]+)</a></div>)?`

// Capture group names every pattern must define.
var groupNames = []string{"name", "title", "email"}

// Ensure Extractor implements contacts.ContactExtractor at compile time.
var _ contacts.ContactExtractor = (*Extractor)(nil)

// Extractor extracts contacts by matching a pattern with the named groups
// name, title and email.
type Extractor struct {
	re    *regexp.Regexp
	name  int
	title int
	email int
}

// NewExtractor creates an Extractor using DefaultPattern.
func NewExtractor() *Extractor {
	e, err := NewExtractorWithPattern(DefaultPattern)
	if err != nil {
		panic(err)
	}
	return e
}

// NewExtractorWithPattern creates an Extractor from a custom pattern.
// Returns EINVALID if the pattern does not compile or lacks one of the
// name, title or email groups.
func NewExtractorWithPattern(pattern string) (*Extractor, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, contacts.Errorf(contacts.EINVALID, "invalid pattern: %v", err)
	}

	names := re.SubexpNames()
	for _, g := range groupNames {
		if !slices.Contains(names, g) {
			return nil, contacts.Errorf(contacts.EINVALID, "pattern has no %q group", g)
		}
	}

	return &Extractor{
		re:    re,
		name:  re.SubexpIndex("name"),
		title: re.SubexpIndex("title"),
		email: re.SubexpIndex("email"),
	}, nil
}

// Extract returns the contacts found in html in document order.
//
// Matches are found one at a time as the sequence is consumed. A match
// whose name or title capture is empty is skipped, so every yielded
// contact passes Validate. Email is empty when the email group did not
// participate in the match.
func (e *Extractor) Extract(html string) iter.Seq[*contacts.Contact] {
	return func(yield func(*contacts.Contact) bool) {
		pos := 0
		for pos < len(html) {
			loc := e.re.FindStringSubmatchIndex(html[pos:])
			if loc == nil {
				return
			}

			c := &contacts.Contact{
				Name:  group(html[pos:], loc, e.name),
				Title: group(html[pos:], loc, e.title),
				Email: group(html[pos:], loc, e.email),
			}

			// Guard against patterns that can match the empty string.
			next := pos + loc[1]
			if loc[1] == loc[0] {
				_, size := utf8.DecodeRuneInString(html[next:])
				next += max(size, 1)
			}
			pos = next

			if c.Validate() != nil {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// group returns the text captured by group i, or "" when it did not
// participate in the match.
func group(s string, loc []int, i int) string {
	start, end := loc[2*i], loc[2*i+1]
	if start < 0 {
		return ""
	}
	return s[start:end]
}
