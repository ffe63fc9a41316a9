package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0755

// EnsureLayout creates <root> and <root>/<typeName> when missing and returns
// the type directory. It is safe to call it every time a repository opens.
func EnsureLayout(root, typeName string) (string, error) {

	err := os.MkdirAll(root, dirPerm)
	if err != nil {
		return "", fmt.Errorf("create storage root: %w", err)
	}

	dir := filepath.Join(root, typeName)
	err = os.MkdirAll(dir, dirPerm)
	if err != nil {
		return "", fmt.Errorf("create storage dir for '%s': %w", typeName, err)
	}

	return dir, nil
}
