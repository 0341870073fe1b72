package mock

import (
	"iter"

	"github.com/fwojciec/contacts"
)

var _ contacts.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of contacts.ContactExtractor.
type ContactExtractor struct {
	ExtractFn func(html string) iter.Seq[*contacts.Contact]
}

func (e *ContactExtractor) Extract(html string) iter.Seq[*contacts.Contact] {
	return e.ExtractFn(html)
}

var _ contacts.BlockCounter = (*BlockCounter)(nil)

// BlockCounter is a mock implementation of contacts.BlockCounter.
type BlockCounter struct {
	CountBlocksFn func(html string) (int, error)
}

func (c *BlockCounter) CountBlocks(html string) (int, error) {
	return c.CountBlocksFn(html)
}
