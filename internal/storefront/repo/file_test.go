package repo

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somascents/storefront/internal/storefront/model"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := memfs.New()
	s := NewFileStore(fs)

	_, found, err := s.Load(ctx, model.CartSnapshotKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, model.CartSnapshotKey, []byte(`[]`)))
	require.NoError(t, s.Save(ctx, model.CartSnapshotKey, []byte(`[{"id":"1","quantity":2}]`)))

	got, found, err := s.Load(ctx, model.CartSnapshotKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"1","quantity":2}]`, string(got))

	raw, err := util.ReadFile(fs, "somascents_cart.json")
	require.NoError(t, err)
	assert.Equal(t, got, raw)

	_, err = fs.Stat("somascents_cart.json.tmp")
	assert.Error(t, err, "temporary file should be renamed away")
}

func TestFileStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(memfs.New())

	require.NoError(t, s.Save(ctx, model.CartSnapshotKey, []byte(`[]`)))
	require.NoError(t, s.Save(ctx, model.FavoritesSnapshotKey, []byte(`["5"]`)))

	fav, _, err := s.Load(ctx, model.FavoritesSnapshotKey)
	require.NoError(t, err)
	assert.Equal(t, `["5"]`, string(fav))
}

func TestNewOSFileStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewOSFileStore(t.TempDir() + "/snapshots")
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "k", []byte("v")))
	got, found, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", string(got))
}
