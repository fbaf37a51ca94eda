package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImages(t *testing.T) {
	path := writeManifest(t, `{
		"file_list": [
			{"path": "wt/ExpID8001/leaf_merge.png", "mimetype": "image/png", "size_in_bytes": 120},
			{"path": "wt/ExpID8001/notes.txt", "mimetype": "text/plain"},
			{"path": "spch/ExpID8002/leaf.png", "mimetype": "image/png"}
		]
	}`)

	m, err := Load(path)
	require.NoError(t, err)

	entries, err := m.Images()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	root := filepath.Dir(path)
	assert.Equal(t, Entry{Path: filepath.Join(root, "wt", "ExpID8001", "leaf_merge.png"), Tag: "wt"}, entries[0])
	assert.Equal(t, "spch", entries[1].Tag)
}

func TestImages_Untagged(t *testing.T) {
	m, err := Load(writeManifest(t, `{"file_list": [{"path": "leaf.png", "mimetype": "image/png"}]}`))
	require.NoError(t, err)

	_, err = m.Images()
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeManifest(t, `{"file_list": [`))
	assert.Error(t, err)
}

func TestImages_Empty(t *testing.T) {
	m, err := Load(writeManifest(t, `{"file_list": []}`))
	require.NoError(t, err)

	entries, err := m.Images()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
