package localstore

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Store keeps generated artifacts on the local filesystem under a root
// directory.
type Store struct {
	Fs afero.Fs
}

func New(root string) *Store {
	return &Store{
		Fs: afero.NewBasePathFs(afero.NewOsFs(), root),
	}
}

func (s *Store) Load(ctx context.Context, path string) ([]byte, error) {
	content, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load %s", path)
	}
	return content, nil
}

func (s *Store) Save(ctx context.Context, path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.Fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "couldn't create directory for %s", path)
		}
	}
	if err := afero.WriteFile(s.Fs, path, content, 0644); err != nil {
		return errors.Wrapf(err, "couldn't save %s", path)
	}
	return nil
}
