package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "fleet.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_RoundTrip(t *testing.T) {
	s := newTestSQLite(t)

	_, ok, err := s.Read("users")
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write("users", []byte(`[{"id":"u1"}]`)))
	b, ok, err := s.Read("users")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"u1"}]`, string(b))

	// upsert: запись поверх существующего ключа заменяет значение
	require.NoError(t, s.Write("users", []byte(`[]`)))
	b, _, _ = s.Read("users")
	assert.Equal(t, `[]`, string(b))

	require.NoError(t, s.Delete("users"))
	_, ok, _ = s.Read("users")
	assert.False(t, ok)
	assert.NoError(t, s.Delete("users"))
}

func TestSQLite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "fleet.sqlite")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write("appTheme", []byte("dark")))
	b, ok, err := s.Read("appTheme")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", string(b))
}

func TestSQLite_EmptyPathRejected(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
