package repo

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// FileStore writes each snapshot to "<key>.json" on a billy filesystem.
type FileStore struct {
	fs billy.Filesystem
}

// NewFileStore stores snapshots on fs. Use memfs in tests.
func NewFileStore(fs billy.Filesystem) *FileStore {
	return &FileStore{fs: fs}
}

// NewOSFileStore stores snapshots under dir on the local disk, creating it if needed.
func NewOSFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errx.WrapFile(err)
	}
	return NewFileStore(osfs.New(dir)), nil
}

func (f *FileStore) fileName(key string) string {
	return path.Clean(key) + ".json"
}

func (f *FileStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	name := f.fileName(key)
	b, err := util.ReadFile(f.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		logx.Error().Err(err).Str("file", name).Msg("failed to read snapshot file")
		return nil, false, errx.WrapFile(err)
	}
	return b, true, nil
}

// Save writes to a temporary file and renames it over the snapshot so a
// crash never leaves a half-written snapshot behind.
func (f *FileStore) Save(_ context.Context, key string, data []byte) error {
	name := f.fileName(key)
	tmp := name + ".tmp"
	if err := util.WriteFile(f.fs, tmp, data, 0o644); err != nil {
		logx.Error().Err(err).Str("file", tmp).Msg("failed to write snapshot file")
		return errx.WrapFile(err)
	}
	if err := f.fs.Rename(tmp, name); err != nil {
		logx.Error().Err(err).Str("file", name).Msg("failed to replace snapshot file")
		_ = f.fs.Remove(tmp)
		return errx.WrapFile(err)
	}
	return nil
}

var _ model.SnapshotStore = (*FileStore)(nil)
