// Package goquery implements DOM-based inspection of directory pages
// using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/contacts"
)

// DefaultBlockSelector matches the element that opens every member block.
const DefaultBlockSelector = "div.member_name"

// Ensure BlockCounter implements contacts.BlockCounter at compile time.
var _ contacts.BlockCounter = (*BlockCounter)(nil)

// BlockCounter counts member blocks with a CSS selector.
type BlockCounter struct {
	selector string
}

// NewBlockCounter creates a BlockCounter using DefaultBlockSelector.
func NewBlockCounter() *BlockCounter {
	return &BlockCounter{selector: DefaultBlockSelector}
}

// NewBlockCounterWithSelector creates a BlockCounter for a custom selector.
func NewBlockCounterWithSelector(selector string) *BlockCounter {
	return &BlockCounter{selector: selector}
}

// CountBlocks parses html and returns the number of elements matching the
// block selector. Elements with no text are not counted, mirroring the
// extractor, which skips blocks without a name.
func (c *BlockCounter) CountBlocks(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, contacts.Errorf(contacts.EINVALID, "failed to parse HTML: %v", err)
	}

	n := 0
	doc.Find(c.selector).Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) != "" {
			n++
		}
	})
	return n, nil
}
