// Package cache persists the fingerprint store: a JSON map from source leaf
// filename to the content hash last seen compiling successfully and the path
// of the artifact it produced. It also hosts the staleness decision applied
// per node during a build.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Entry records the last successfully compiled state of one source file.
type Entry struct {
	Hash      string `json:"hash"`
	ClassPath string `json:"class_path"`
}

// Cache maps leaf filenames to fingerprint entries.
type Cache map[string]Entry

// Load reads the fingerprint store at path. A missing or unparsable file
// yields an empty cache: the next build rebuilds everything and overwrites
// the store.
func Load(path string) Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(Cache)
	}
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil || c == nil {
		return make(Cache)
	}
	return c
}

// Save writes the store atomically: the JSON is written to a sibling temp
// file and renamed over path, so an interrupted build never leaves a
// truncated store behind.
func (c Cache) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
