package recordstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection(t *testing.T) {
	t.Run(`append N then load N check`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.json")
		col := NewCollection(path)

		records := []testRecord{
			{ID: "a", Name: "first"},
			{ID: "b", Name: "second"},
			{ID: "c", Name: "third"},
		}
		for _, rec := range records {
			require.Nil(t, col.Append(rec))
		}

		loaded := []testRecord{}
		require.Nil(t, col.Load(&loaded))
		require.Equal(t, 3, len(loaded))
		seen := map[string]bool{}
		for idx, rec := range loaded {
			require.Equal(t, records[idx], rec)
			require.Equal(t, false, seen[rec.ID])
			seen[rec.ID] = true
		}
	})

	t.Run(`missing file is an empty collection check`, func(t *testing.T) {
		col := NewCollection(filepath.Join(t.TempDir(), "missing.json"))
		loaded := []testRecord{}
		require.Nil(t, col.Load(&loaded))
		require.Equal(t, 0, len(loaded))
	})

	t.Run(`corrupt file recovers as empty check`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.json")
		require.Nil(t, os.WriteFile(path, []byte("{not json"), 0o644))

		col := NewCollection(path)
		loaded := []testRecord{}
		require.Nil(t, col.Load(&loaded))
		require.Equal(t, 0, len(loaded))

		require.Nil(t, col.Append(testRecord{ID: "a", Name: "first"}))
		require.Nil(t, col.Load(&loaded))
		require.Equal(t, 1, len(loaded))
	})

	t.Run(`append creates parent directory check`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "records.json")
		col := NewCollection(path)
		require.Nil(t, col.Append(testRecord{ID: "a"}))
		_, err := os.Stat(path)
		require.Nil(t, err)
	})
}
