package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
)

// List returns the snapshot file names of dir in ascending name order.
// Directories, symlinks and leftovers of interrupted writes are skipped.
func List(dir string) ([]string, error) {

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if isTemporary(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// LoadLatest reads the last snapshot of dir. It returns a nil snapshot and an
// empty filename when there is nothing to load.
func LoadLatest(dir string) (*Snapshot, string, error) {

	names, err := List(dir)
	if err != nil {
		return nil, "", err
	}

	if len(names) == 0 {
		return nil, "", nil
	}

	filename := filepath.Join(dir, names[len(names)-1])
	snapshot, err := Read(filename)
	if err != nil {
		return nil, filename, err
	}

	return snapshot, filename, nil
}

// Read decodes one snapshot file. Missing fields are left to their zero
// values; unknown fields are ignored.
func Read(filename string) (*Snapshot, error) {

	payload, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	snapshot := &Snapshot{}
	err = json.Unmarshal(payload, snapshot)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot '%s': %w", filepath.Base(filename), err)
	}

	return snapshot, nil
}
