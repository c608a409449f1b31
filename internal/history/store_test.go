package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Record(ctx, "workbench.newTab"))
	require.NoError(t, s.Record(ctx, "workbench.openSettings"))
	require.NoError(t, s.Record(ctx, "workbench.newTab"))

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	// Distinct ids, most recent invocation first
	assert.Equal(t, []string{"workbench.newTab", "workbench.openSettings"}, recent)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Record(ctx, id))
	}

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, recent)

	recent, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, recent)
}

func TestRecentEmptyStore(t *testing.T) {
	s := openTestStore(t)
	recent, err := s.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
