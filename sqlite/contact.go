package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/contacts"
)

// Compile-time interface verification.
var _ contacts.ContactService = (*ContactService)(nil)

// ContactService implements contacts.ContactService using SQLite.
// Every call opens the database file and closes it before returning.
type ContactService struct {
	path string
}

// NewContactService creates a new ContactService for the database at path.
func NewContactService(path string) *ContactService {
	return &ContactService{path: path}
}

// Initialize creates the schema if it does not exist yet.
func (s *ContactService) Initialize(ctx context.Context) error {
	return withDB(s.path, func(db *DB) error {
		if err := db.CreateSchema(ctx); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return nil
	})
}

// SaveContacts inserts contacts in one transaction and returns the number
// of rows inserted. Rows whose email is already stored are left untouched.
// Empty emails are bound as NULL so they never conflict.
func (s *ContactService) SaveContacts(ctx context.Context, list []*contacts.Contact) (int, error) {
	for _, c := range list {
		if err := c.Validate(); err != nil {
			return 0, err
		}
	}

	inserted := 0
	err := withDB(s.path, func(db *DB) error {
		tx, err := db.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO contacts (name, title, email)
			VALUES (?, ?, NULLIF(?, ''))
			ON CONFLICT(email) DO NOTHING
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, c := range list {
			result, err := stmt.ExecContext(ctx, c.Name, c.Title, c.Email)
			if err != nil {
				return fmt.Errorf("failed to insert contact %q: %w", c.Name, err)
			}
			n, err := result.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// FindContacts retrieves contacts matching the filter in insertion order.
func (s *ContactService) FindContacts(ctx context.Context, filter contacts.ContactFilter) ([]*contacts.Contact, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT lid, name, title, COALESCE(email, '') FROM contacts WHERE 1=1")

	if filter.Email != nil {
		if *filter.Email == "" {
			query.WriteString(" AND email IS NULL")
		} else {
			query.WriteString(" AND email = ?")
			args = append(args, *filter.Email)
		}
	}

	query.WriteString(" ORDER BY lid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	var list []*contacts.Contact
	err := withDB(s.path, func(db *DB) error {
		rows, err := db.QueryContext(ctx, query.String(), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c contacts.Contact
			if err := rows.Scan(&c.ID, &c.Name, &c.Title, &c.Email); err != nil {
				return err
			}
			list = append(list, &c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}
