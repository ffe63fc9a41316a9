package repository

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

func Environment(f func(root string)) {
	root := filepath.Join(os.TempDir(), "test_"+uuid.New().String())
	defer os.RemoveAll(root)
	f(root)
}
