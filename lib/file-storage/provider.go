// Package filestorage stores uploaded binaries under generated,
// collision-resistant names. Lookup is by exact name only; any path
// components in a requested name are stripped before resolving, so the
// store can never serve a file outside its root.
package filestorage

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("file not found")

type Provider interface {
	Store(ctx context.Context, fileName string, file []byte) error
	Retrieve(ctx context.Context, fileName string) ([]byte, error)
}

var Instance Provider
