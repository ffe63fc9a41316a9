package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
)

var ErrTooManySnapshots = errors.New("too many snapshots in the same second")

// Write stores snapshot as a new file in dir and returns its full path.
func Write(dir, typeName string, snapshot *Snapshot) (string, error) {
	return WriteAt(dir, typeName, snapshot, time.Now())
}

// WriteAt is Write with an explicit save time. Existing files are never
// overwritten.
func WriteAt(dir, typeName string, snapshot *Snapshot, t time.Time) (string, error) {

	if snapshot.Data == nil {
		snapshot.Data = []map[string]any{}
	}

	payload, err := json.Marshal(snapshot, jsontext.WithIndent("    "), json.Deterministic(true))
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := filepath.Join(dir, "."+typeName+"_"+uuid.NewString()+tmpExtension)
	err = writeFile(tmp, payload)
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	defer os.Remove(tmp) // no-op once renamed

	for seq := 0; seq <= maxSequence; seq++ {
		filename := filepath.Join(dir, Filename(typeName, t, seq))

		_, err := os.Lstat(filename)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat snapshot: %w", err)
		}

		err = os.Rename(tmp, filename)
		if err != nil {
			return "", fmt.Errorf("commit snapshot: %w", err)
		}
		return filename, nil
	}

	return "", fmt.Errorf("%w: %s", ErrTooManySnapshots, Filename(typeName, t, 0))
}

func writeFile(filename string, payload []byte) error {

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}

	_, err = f.Write(payload)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return err
}
