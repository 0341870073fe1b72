package mock

import (
	"context"

	"github.com/fwojciec/contacts"
)

var _ contacts.RunService = (*RunService)(nil)

// RunService is a mock implementation of contacts.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *contacts.Run, content string) error
	FindRunsFn  func(ctx context.Context, filter contacts.RunFilter) ([]*contacts.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *contacts.Run, content string) error {
	return s.CreateRunFn(ctx, run, content)
}

func (s *RunService) FindRuns(ctx context.Context, filter contacts.RunFilter) ([]*contacts.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
