package contacts

import "iter"

// ContactExtractor pulls contact records out of raw page text.
type ContactExtractor interface {
	// Extract returns the contacts found in html in document order.
	// The sequence is lazy and can be ranged over more than once.
	// Extraction never fails: text without recognisable blocks yields
	// an empty sequence.
	Extract(html string) iter.Seq[*Contact]
}

// BlockCounter counts contact blocks in a page using a full DOM parse.
// Comparing its count with the number of extracted contacts reveals
// markup changes the extraction pattern no longer understands.
type BlockCounter interface {
	CountBlocks(html string) (int, error)
}
