package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save(ctx, "salaries/2024-03.xlsx", strings.NewReader("first"))
	require.NoError(t, err)
	assert.Equal(t, "salaries/2024-03.xlsx", key)

	// Saving again replaces the file.
	_, err = store.Save(ctx, "salaries/2024-03.xlsx", strings.NewReader("second"))
	require.NoError(t, err)

	rc, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	ok, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "salaries/2024-04.xlsx")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, path := range []string{"../outside.xlsx", "a/../../outside.xlsx", ""} {
		_, err := store.Save(ctx, path, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidPath, path)
	}

	_, err = store.Open(ctx, "missing.xlsx")
	assert.Error(t, err)
}
