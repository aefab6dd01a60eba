//go:build !js

package storage

import (
	"os"
	"path/filepath"
)

const appDirName = "gamekit"

// dataDir returns the first usable data directory: a data/ folder next to
// the executable, then the user config dir, then data/ under the working
// directory. The result is created if missing.
func dataDir() (string, error) {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "data"))
	}
	if cfg, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(cfg, appDirName))
	}
	candidates = append(candidates, "data")

	var lastErr error
	for _, dir := range candidates {
		if err := os.MkdirAll(dir, 0755); err != nil {
			lastErr = err
			continue
		}
		return dir, nil
	}
	return "", lastErr
}

func keyPath(key string) (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key+".kv"), nil
}

func store(key, value string) error {
	path, err := keyPath(key)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(value), 0644)
}

func load(key string) (string, bool) {
	path, err := keyPath(key)
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
