// Package config manages mdcontext entries in Claude Desktop's
// configuration file, so a markdown folder can be registered as an MCP
// server without hand-editing JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	configFileName = "claude_desktop_config.json"
	serversKey     = "mcpServers"
)

// ErrServerNotFound is returned when removing a server name that is not
// configured.
var ErrServerNotFound = errors.New("server not found in configuration")

// ServerEntry is one MCP server registration in Claude Desktop's config.
type ServerEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// Path returns the platform-specific Claude Desktop configuration path.
func Path() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "Claude", configFileName), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA is not set")
		}
		return filepath.Join(appData, "Claude", configFileName), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "Claude", configFileName), nil
	}
}

// load reads the config file into a generic map, preserving keys this tool
// does not manage. A missing file yields an empty config.
func load(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg == nil {
		cfg = map[string]interface{}{}
	}
	return cfg, nil
}

// save writes the config back with stable indentation, creating the parent
// directory if needed.
func save(path string, cfg map[string]interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func serversSection(cfg map[string]interface{}) map[string]interface{} {
	if section, ok := cfg[serversKey].(map[string]interface{}); ok {
		return section
	}
	section := map[string]interface{}{}
	cfg[serversKey] = section
	return section
}

// AddServer registers a markdown folder as an mdcontext MCP server in the
// config file at path. execPath is the mdcontext binary to launch.
func AddServer(path, name, folder, execPath string) error {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("failed to resolve folder: %w", err)
	}

	cfg, err := load(path)
	if err != nil {
		return err
	}

	servers := serversSection(cfg)
	servers[name] = ServerEntry{
		Command: execPath,
		Args:    []string{"serve", "--folder", absFolder, "--name", name},
	}
	return save(path, cfg)
}

// RemoveServer deletes a server registration by name.
func RemoveServer(path, name string) error {
	cfg, err := load(path)
	if err != nil {
		return err
	}

	servers, ok := cfg[serversKey].(map[string]interface{})
	if !ok {
		return ErrServerNotFound
	}
	if _, exists := servers[name]; !exists {
		return ErrServerNotFound
	}
	delete(servers, name)
	return save(path, cfg)
}

// ListServers returns the mdcontext server registrations in the config,
// identified by a "serve" + "--folder" argument shape.
func ListServers(path string) (map[string]ServerEntry, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	servers, ok := cfg[serversKey].(map[string]interface{})
	if !ok {
		return map[string]ServerEntry{}, nil
	}

	out := make(map[string]ServerEntry)
	for name, value := range servers {
		raw, err := json.Marshal(value)
		if err != nil {
			continue
		}
		var entry ServerEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		if isMdcontextEntry(entry) {
			out[name] = entry
		}
	}
	return out, nil
}

// Folder extracts the --folder argument from a server entry, if present.
func (e ServerEntry) Folder() string {
	for i, arg := range e.Args {
		if arg == "--folder" && i+1 < len(e.Args) {
			return e.Args[i+1]
		}
	}
	return ""
}

func isMdcontextEntry(entry ServerEntry) bool {
	hasServe, hasFolder := false, false
	for _, arg := range entry.Args {
		switch arg {
		case "serve":
			hasServe = true
		case "--folder":
			hasFolder = true
		}
	}
	return hasServe && hasFolder
}
