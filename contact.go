package contacts

import "context"

// Contact represents one person scraped from a directory page.
type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`

	// Email is empty when the page lists no mailto link for the person.
	// It is kept byte-for-byte as captured because deduplication keys on it.
	Email string `json:"email"`
}

// Validate returns an error if the contact contains invalid fields.
func (c *Contact) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "contact name required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "contact title required")
	}
	return nil
}

// ContactService represents a service for persisting contacts.
type ContactService interface {
	// Initialize creates the storage schema if it does not exist yet.
	// Safe to call on every startup.
	Initialize(ctx context.Context) error

	// SaveContacts inserts contacts in a single transaction and returns the
	// number of rows actually inserted. A contact whose non-empty email is
	// already stored is skipped without error. Contacts without an email
	// are always inserted.
	SaveContacts(ctx context.Context, contacts []*Contact) (int, error)

	// FindContacts retrieves stored contacts in insertion order.
	FindContacts(ctx context.Context, filter ContactFilter) ([]*Contact, error)
}

// ContactFilter represents a filter for FindContacts.
type ContactFilter struct {
	Email *string `json:"email"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
