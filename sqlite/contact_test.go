package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/contacts"
	"github.com/fwojciec/contacts/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()

	var n int
	queryScalar(t, db, "SELECT COUNT(*) FROM contacts", &n)
	return n
}

func TestContactService_Initialize(t *testing.T) {
	t.Parallel()

	t.Run("is safe to call repeatedly", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "contacts.db")
		svc := sqlite.NewContactService(path)
		ctx := context.Background()

		require.NoError(t, svc.Initialize(ctx))
		_, err := svc.SaveContacts(ctx, []*contacts.Contact{{Name: "Alice", Title: "Professor", Email: "a@x.edu"}})
		require.NoError(t, err)
		require.NoError(t, svc.Initialize(ctx))

		assert.Equal(t, 1, countRows(t, path))
	})

	t.Run("returns error when database cannot be opened", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContactService("/nonexistent/path/contacts.db")

		err := svc.Initialize(context.Background())
		require.Error(t, err)
	})
}

func TestContactService_SaveContacts(t *testing.T) {
	t.Parallel()

	t.Run("inserts contacts and reports count", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)
		ctx := context.Background()

		n, err := svc.SaveContacts(ctx, []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
			{Name: "王小明", Title: "教授兼系主任", Email: "wang@ncut.edu.tw"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, countRows(t, path))
	})

	t.Run("saving the same set twice stores each email once", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)
		ctx := context.Background()
		list := []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
			{Name: "Bob", Title: "Lecturer", Email: "b@x.edu"},
		}

		first, err := svc.SaveContacts(ctx, list)
		require.NoError(t, err)
		second, err := svc.SaveContacts(ctx, list)
		require.NoError(t, err)

		assert.Equal(t, 2, first)
		assert.Zero(t, second)
		assert.Equal(t, 2, countRows(t, path))
	})

	t.Run("keeps the first contact for a duplicate email", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)
		ctx := context.Background()

		n, err := svc.SaveContacts(ctx, []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "shared@x.edu"},
			{Name: "Alicia", Title: "Dean", Email: "shared@x.edu"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		email := "shared@x.edu"
		got, err := svc.FindContacts(ctx, contacts.ContactFilter{Email: &email})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "Professor", got[0].Title)
	})

	t.Run("always inserts contacts without email", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)
		ctx := context.Background()
		list := []*contacts.Contact{
			{Name: "Alice", Title: "Professor"},
			{Name: "Alice", Title: "Professor"},
		}

		first, err := svc.SaveContacts(ctx, list)
		require.NoError(t, err)
		second, err := svc.SaveContacts(ctx, list)
		require.NoError(t, err)

		assert.Equal(t, 2, first)
		assert.Equal(t, 2, second)
		assert.Equal(t, 4, countRows(t, path))
	})

	t.Run("treats emails as exact bytes", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)

		n, err := svc.SaveContacts(context.Background(), []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
			{Name: "Alice", Title: "Professor", Email: "A@X.EDU"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)

		n, err := svc.SaveContacts(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Zero(t, countRows(t, path))
	})

	t.Run("rejects invalid contact before writing", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)

		_, err := svc.SaveContacts(context.Background(), []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
			{Name: "", Title: "Professor"},
		})

		require.Error(t, err)
		assert.Equal(t, contacts.EINVALID, contacts.ErrorCode(err))
		assert.Zero(t, countRows(t, path))
	})

	t.Run("returns error when schema is missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "uninitialized.db")
		svc := sqlite.NewContactService(path)

		_, err := svc.SaveContacts(context.Background(), []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
		})

		require.Error(t, err)
	})

	t.Run("counts distinct emails plus email-less contacts across runs", func(t *testing.T) {
		t.Parallel()

		path := setupTestPath(t)
		svc := sqlite.NewContactService(path)
		ctx := context.Background()
		list := []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
			{Name: "Bob", Title: "Lecturer"},
			{Name: "Carol", Title: "Associate Professor", Email: "c@x.edu"},
		}

		for range 2 {
			_, err := svc.SaveContacts(ctx, list)
			require.NoError(t, err)
		}

		// 2 distinct emails + 1 email-less contact per run.
		assert.Equal(t, 2+2, countRows(t, path))
	})
}

func TestContactService_FindContacts(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.ContactService {
		t.Helper()
		svc := sqlite.NewContactService(setupTestPath(t))
		_, err := svc.SaveContacts(context.Background(), []*contacts.Contact{
			{Name: "Alice", Title: "Professor", Email: "a@x.edu"},
			{Name: "Bob", Title: "Lecturer"},
			{Name: "Carol", Title: "Associate Professor", Email: "c@x.edu"},
		})
		require.NoError(t, err)
		return svc
	}

	t.Run("returns contacts in insertion order with IDs", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		got, err := svc.FindContacts(context.Background(), contacts.ContactFilter{})

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "Bob", got[1].Name)
		assert.Equal(t, "Carol", got[2].Name)
		assert.Positive(t, got[0].ID)
		assert.Less(t, got[0].ID, got[1].ID)
	})

	t.Run("reads missing email back as empty string", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		empty := ""
		got, err := svc.FindContacts(context.Background(), contacts.ContactFilter{Email: &empty})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bob", got[0].Name)
		assert.Empty(t, got[0].Email)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		got, err := svc.FindContacts(context.Background(), contacts.ContactFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bob", got[0].Name)

		got, err = svc.FindContacts(context.Background(), contacts.ContactFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Carol", got[0].Name)
	})

	t.Run("returns empty result for empty table", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContactService(setupTestPath(t))

		got, err := svc.FindContacts(context.Background(), contacts.ContactFilter{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
