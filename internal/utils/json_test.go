package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	t.Run("loads a shop template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "general_store.json")
		content := `{"balance": 500, "inventory": [{"id": "rope", "qty": 10}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		var result struct {
			Balance   int `json:"balance"`
			Inventory []struct {
				ID  string `json:"id"`
				Qty int    `json:"qty"`
			} `json:"inventory"`
		}

		err := LoadJSON(path, &result)

		require.NoError(t, err)
		assert.Equal(t, 500, result.Balance)
		require.Len(t, result.Inventory, 1)
		assert.Equal(t, "rope", result.Inventory[0].ID)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var result map[string]any
		err := LoadJSON("/nonexistent/path/file.json", &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte("{invalid json}"), 0o600))

		var result map[string]any
		err := LoadJSON(path, &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestLoadJSON_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alley.yaml")
	content := "name: a dark alley\nobjects:\n  - name: a rusty lantern\n    keywords: [lantern]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var room struct {
		Name    string `json:"name"`
		Objects []struct {
			Name     string   `json:"name"`
			Keywords []string `json:"keywords"`
		} `json:"objects"`
	}

	require.NoError(t, LoadJSON(path, &room))
	assert.Equal(t, "a dark alley", room.Name)
	require.Len(t, room.Objects, 1)
	assert.Equal(t, []string{"lantern"}, room.Objects[0].Keywords)
}

func TestLoadJSON_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o600))

	var result map[string]any
	err := LoadJSON(path, &result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestFindAsset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curio.yml"), []byte("name: x"), 0o600))

	path, ok := FindAsset(filepath.Join(dir, "curio"))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "curio.yml"), path)

	_, ok = FindAsset(filepath.Join(dir, "market"))
	assert.False(t, ok)
}
