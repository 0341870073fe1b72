package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/contacts"
	main "github.com/fwojciec/contacts/cmd/contacts"
	"github.com/fwojciec/contacts/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("warns when pattern misses blocks", func(t *testing.T) {
		t.Parallel()

		html := "<html>" + memberBlock("Alice", "Professor", "a@x.edu") + "</html>"
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) { return html, nil },
			},
			Blocks: &mock.BlockCounter{
				CountBlocksFn: func(_ string) (int, error) { return 4, nil },
			},
		}

		err := (&main.ProbeCmd{URL: "https://example.edu/staff"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "blocks:     4")
		assert.Contains(t, stdout.String(), "extracted:  1")
		assert.Contains(t, stderr.String(), "pattern matched 1 of 4 blocks")
	})

	t.Run("counts blocks with custom selector", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li class="person">Alice</li><li class="person">Bob</li></ul>`
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) { return html, nil },
			},
			Blocks: &mock.BlockCounter{
				CountBlocksFn: func(_ string) (int, error) { return 99, nil },
			},
		}

		err := (&main.ProbeCmd{URL: "https://example.edu/staff", Selector: "li.person"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "blocks:     2")
	})

	t.Run("reports fetch error class", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", contacts.Errorf(contacts.ETIMEOUT, "timed out fetching %s", url)
				},
			},
		}

		err := (&main.ProbeCmd{URL: "https://example.edu/staff"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "did not respond in time")
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.ProbeCmd{URL: "https://example.edu", Pattern: "(?P<name>"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, contacts.EINVALID, contacts.ErrorCode(err))
	})
}
