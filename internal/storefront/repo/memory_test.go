package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LoadMissing(t *testing.T) {
	s := NewMemoryStore()

	b, found, err := s.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, b)
}

func TestMemoryStore_SaveCopiesInput(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data := []byte(`["1"]`)
	require.NoError(t, s.Save(ctx, "k", data))
	data[1] = 'X'

	got, found, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `["1"]`, string(got))
}
