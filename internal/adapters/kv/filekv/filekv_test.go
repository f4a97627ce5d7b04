package filekv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyobht/project_finance_app/internal/adapters/kv/filekv"
)

func TestLoad_MissingKeyIsAbsent(t *testing.T) {
	store, err := filekv.New(t.TempDir())
	require.NoError(t, err)

	data, found, err := store.Load(context.Background(), "financial-projects")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSaveAndLoad(t *testing.T) {
	store, err := filekv.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	doc := []byte(`[{"id":"p1","name":"Water Supply"}]`)
	require.NoError(t, store.Save(ctx, "financial-projects", doc))

	data, found, err := store.Load(ctx, "financial-projects")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc, data)
}

func TestSave_ReplacesPreviousValue(t *testing.T) {
	store, err := filekv.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "financial-budgets", []byte(`[]`)))
	require.NoError(t, store.Save(ctx, "financial-budgets", []byte(`[{"id":"b1"}]`)))

	data, found, err := store.Load(ctx, "financial-budgets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":"b1"}]`), data)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := filekv.New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "financial-currencies", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "financial-currencies.json", entries[0].Name())
}

func TestNew_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := filekv.New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
