// Package recordstore persists submission records as a JSON array in a
// single file per collection. Appends are read-modify-rewrite of the whole
// file and are NOT synchronized: two concurrent appends can race and the
// last writer wins. This mirrors the historical store and is an accepted
// limitation, not a correctness goal.
package recordstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Provider interface {
	Append(record interface{}) error
	Load(out interface{}) error
}

type Collection struct {
	path string
}

func NewCollection(path string) *Collection {
	return &Collection{path: path}
}

// Append adds one record to the collection and rewrites the file.
// A missing or unparseable existing file is treated as an empty collection.
func (c *Collection) Append(record interface{}) error {
	existing := c.readOrEmpty()

	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}
	existing = append(existing, raw)

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode collection")
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create data directory")
		}
	}
	if err = os.WriteFile(c.path, out, 0o644); err != nil {
		return errors.Wrap(err, "failed to write collection")
	}
	return nil
}

// Load decodes the whole collection into out (a pointer to a slice).
// A missing or corrupt file leaves out untouched and returns no error.
func (c *Collection) Load(out interface{}) error {
	content, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}
	if err = json.Unmarshal(content, out); err != nil {
		return nil
	}
	return nil
}

func (c *Collection) readOrEmpty() []json.RawMessage {
	existing := []json.RawMessage{}
	content, err := os.ReadFile(c.path)
	if err != nil {
		return existing
	}
	if err = json.Unmarshal(content, &existing); err != nil {
		return []json.RawMessage{}
	}
	return existing
}
