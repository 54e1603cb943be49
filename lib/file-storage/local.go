package filestorage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type localImpl struct {
	dir string
}

// NewLocalHandler stores files on the local disk under dir.
func NewLocalHandler(dir string) Provider {
	Instance = &localImpl{dir: dir}
	return Instance
}

func (i localImpl) Store(ctx context.Context, fileName string, file []byte) error {
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create upload directory")
	}
	path := filepath.Join(i.dir, filepath.Base(fileName))
	if err := os.WriteFile(path, file, 0o644); err != nil {
		return errors.Wrap(err, "failed to write uploaded file")
	}
	return nil
}

func (i localImpl) Retrieve(ctx context.Context, fileName string) ([]byte, error) {
	path := filepath.Join(i.dir, filepath.Base(fileName))
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to read stored file")
	}
	return content, nil
}
