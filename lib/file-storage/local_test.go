package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()

	t.Run(`store then retrieve check`, func(t *testing.T) {
		store := NewLocalHandler(t.TempDir())
		content := []byte("%PDF-1.4 payload")

		require.Nil(t, store.Store(ctx, "APP-1A2B3C4D-hr-intern-Jane_Doe.pdf", content))
		got, err := store.Retrieve(ctx, "APP-1A2B3C4D-hr-intern-Jane_Doe.pdf")
		require.Nil(t, err)
		require.Equal(t, content, got)
	})

	t.Run(`unknown file yields not found check`, func(t *testing.T) {
		store := NewLocalHandler(t.TempDir())
		_, err := store.Retrieve(ctx, "nope.pdf")
		require.Equal(t, ErrNotFound, err)
	})

	t.Run(`path traversal stays inside the directory check`, func(t *testing.T) {
		dir := t.TempDir()
		store := NewLocalHandler(dir)

		require.Nil(t, store.Store(ctx, "../../escape.pdf", []byte("x")))
		_, err := os.Stat(filepath.Join(dir, "escape.pdf"))
		require.Nil(t, err)
		_, err = os.Stat(filepath.Join(dir, "..", "..", "escape.pdf"))
		require.Equal(t, true, os.IsNotExist(err))

		_, err = store.Retrieve(ctx, "../../../etc/passwd")
		require.Equal(t, ErrNotFound, err)
	})
}
