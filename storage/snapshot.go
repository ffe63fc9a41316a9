// Package storage persists repository state as immutable JSON snapshot files,
// one directory per entity type:
//
//	<root>/<typeName>/<typeName>_<unixTimestamp>.json
//
// Only the lexicographically last file of a directory is ever read. Older
// files are kept as history and never merged.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
)

// Metadata.Increment is the next id the repository will assign.
type Metadata struct {
	Increment int `json:"increment"`
}

// UnmarshalJSON reads the increment the same lenient way record ids are read:
// numeric strings are accepted and unreadable values fall back to 0.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	items := map[string]any{}
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	m.Increment = entity.Int(items, "increment")
	return nil
}

type Snapshot struct {
	Data     []map[string]any `json:"data"`
	Metadata Metadata         `json:"metadata"`
}

const (
	extension    = ".json"
	tmpExtension = ".tmp"

	// maxSequence bounds the same-second suffix (_001 ... _999)
	maxSequence = 999
)

// Filename returns the snapshot file name for a save at t. seq > 0 adds a
// zero padded suffix that sorts after the plain name and before the next
// second.
func Filename(typeName string, t time.Time, seq int) string {
	if seq == 0 {
		return fmt.Sprintf("%s_%d%s", typeName, t.Unix(), extension)
	}
	return fmt.Sprintf("%s_%d_%03d%s", typeName, t.Unix(), seq, extension)
}

func isTemporary(name string) bool {
	return strings.HasSuffix(name, tmpExtension)
}
