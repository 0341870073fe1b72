package main

import (
	"fmt"

	"github.com/fwojciec/contacts"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := contacts.ContactFilter{Limit: c.Limit}
	if c.Email != "" {
		filter.Email = &c.Email
	}

	list, err := deps.Contacts.FindContacts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.ErrorMessage(err))
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(deps.Stdout, "No contacts stored. Use 'contacts fetch' to scrape a page.")
		return nil
	}

	return deps.Renderer.Render(deps.Stdout, list)
}
