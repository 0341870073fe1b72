package mock

import (
	"context"

	"github.com/fwojciec/contacts"
)

var _ contacts.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of contacts.ContactService.
type ContactService struct {
	InitializeFn   func(ctx context.Context) error
	SaveContactsFn func(ctx context.Context, list []*contacts.Contact) (int, error)
	FindContactsFn func(ctx context.Context, filter contacts.ContactFilter) ([]*contacts.Contact, error)
}

func (s *ContactService) Initialize(ctx context.Context) error {
	return s.InitializeFn(ctx)
}

func (s *ContactService) SaveContacts(ctx context.Context, list []*contacts.Contact) (int, error) {
	return s.SaveContactsFn(ctx, list)
}

func (s *ContactService) FindContacts(ctx context.Context, filter contacts.ContactFilter) ([]*contacts.Contact, error) {
	return s.FindContactsFn(ctx, filter)
}
