package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "Claude", "claude_desktop_config.json")
}

func TestAddServer_CreatesConfig(t *testing.T) {
	path := tempConfigPath(t)
	folder := t.TempDir()

	require.NoError(t, AddServer(path, "my-notes", folder, "/usr/local/bin/mdcontext"))

	servers, err := ListServers(path)
	require.NoError(t, err)
	require.Len(t, servers, 1)

	entry := servers["my-notes"]
	assert.Equal(t, "/usr/local/bin/mdcontext", entry.Command)
	assert.Equal(t, folder, entry.Folder())
	assert.Contains(t, entry.Args, "serve")
	assert.Contains(t, entry.Args, "--name")
}

func TestAddServer_PreservesForeignKeys(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{
  "globalShortcut": "Cmd+Space",
  "mcpServers": {
    "other-tool": {"command": "/bin/other", "args": ["--mode", "x"]}
  }
}`), 0o644))

	require.NoError(t, AddServer(path, "docs", t.TempDir(), "/bin/mdcontext"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &cfg))

	assert.Equal(t, "Cmd+Space", cfg["globalShortcut"])
	servers := cfg["mcpServers"].(map[string]interface{})
	assert.Contains(t, servers, "other-tool")
	assert.Contains(t, servers, "docs")
}

func TestAddServer_OverwritesSameName(t *testing.T) {
	path := tempConfigPath(t)
	first := t.TempDir()
	second := t.TempDir()

	require.NoError(t, AddServer(path, "docs", first, "/bin/mdcontext"))
	require.NoError(t, AddServer(path, "docs", second, "/bin/mdcontext"))

	servers, err := ListServers(path)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, second, servers["docs"].Folder())
}

func TestRemoveServer(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, AddServer(path, "docs", t.TempDir(), "/bin/mdcontext"))

	require.NoError(t, RemoveServer(path, "docs"))

	servers, err := ListServers(path)
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestRemoveServer_NotFound(t *testing.T) {
	path := tempConfigPath(t)

	assert.ErrorIs(t, RemoveServer(path, "ghost"), ErrServerNotFound)

	require.NoError(t, AddServer(path, "docs", t.TempDir(), "/bin/mdcontext"))
	assert.ErrorIs(t, RemoveServer(path, "ghost"), ErrServerNotFound)
}

func TestListServers_MissingFile(t *testing.T) {
	servers, err := ListServers(tempConfigPath(t))

	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestListServers_FiltersForeignEntries(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{
  "mcpServers": {
    "other-tool": {"command": "/bin/other", "args": ["--mode", "x"]},
    "mine": {"command": "/bin/mdcontext", "args": ["serve", "--folder", "/notes", "--name", "mine"]}
  }
}`), 0o644))

	servers, err := ListServers(path)

	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "/notes", servers["mine"].Folder())
}

func TestListServers_MalformedConfig(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := ListServers(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestServerEntry_FolderMissing(t *testing.T) {
	entry := ServerEntry{Command: "/bin/x", Args: []string{"serve"}}
	assert.Empty(t, entry.Folder())
}
