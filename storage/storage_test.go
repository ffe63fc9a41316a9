package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestEnsureLayout(t *testing.T) {

	root := filepath.Join(t.TempDir(), "storage")

	dir, err := EnsureLayout(root, "Subject")
	biff.AssertNil(err)
	biff.AssertEqual(dir, filepath.Join(root, "Subject"))

	info, err := os.Stat(dir)
	biff.AssertNil(err)
	biff.AssertTrue(info.IsDir())

	// Idempotent
	_, err = EnsureLayout(root, "Subject")
	biff.AssertNil(err)
}

func TestEnsureLayout_Refused(t *testing.T) {

	root := filepath.Join(t.TempDir(), "storage")
	biff.AssertNil(os.WriteFile(root, []byte("not a dir"), 0666))

	_, err := EnsureLayout(root, "Subject")
	biff.AssertNotNil(err)
}

func TestFilename(t *testing.T) {

	at := time.Unix(1700000000, 0)

	biff.AssertEqual(Filename("Subject", at, 0), "Subject_1700000000.json")
	biff.AssertEqual(Filename("Subject", at, 2), "Subject_1700000000_002.json")

	// Same second suffixes sort after the plain name and before the next second
	biff.AssertTrue(Filename("Subject", at, 0) < Filename("Subject", at, 1))
	biff.AssertTrue(Filename("Subject", at, 1) < Filename("Subject", at, 2))
	biff.AssertTrue(Filename("Subject", at, 999) < Filename("Subject", at.Add(time.Second), 0))
}

func TestLoadLatest_Empty(t *testing.T) {

	snapshot, filename, err := LoadLatest(t.TempDir())

	biff.AssertNil(err)
	biff.AssertNil(snapshot)
	biff.AssertEqual(filename, "")
}

func TestWriteAndLoad(t *testing.T) {

	dir := t.TempDir()

	filename, err := Write(dir, "Subject", &Snapshot{
		Data: []map[string]any{
			{"id": 0, "name": "Math"},
			{"id": 1, "name": "History"},
		},
		Metadata: Metadata{Increment: 2},
	})
	biff.AssertNil(err)
	biff.AssertEqual(filepath.Dir(filename), dir)

	snapshot, loaded, err := LoadLatest(dir)
	biff.AssertNil(err)
	biff.AssertEqual(loaded, filename)
	biff.AssertEqual(snapshot.Metadata.Increment, 2)
	biff.AssertEqualJson(snapshot.Data, []map[string]any{
		{"id": 0, "name": "Math"},
		{"id": 1, "name": "History"},
	})
}

func TestWrite_EmptyData(t *testing.T) {

	dir := t.TempDir()

	filename, err := Write(dir, "Subject", &Snapshot{})
	biff.AssertNil(err)

	payload, err := os.ReadFile(filename)
	biff.AssertNil(err)
	biff.AssertTrue(strings.Contains(string(payload), "\n")) // indented

	document := map[string]any{}
	biff.AssertNil(json.Unmarshal(payload, &document))
	biff.AssertEqual(document["data"], []any{}) // never null
	biff.AssertEqualJson(document["metadata"], map[string]any{"increment": 0})
}

func TestWriteAt_SameSecond(t *testing.T) {

	dir := t.TempDir()
	at := time.Unix(1700000000, 0)

	first, err := WriteAt(dir, "Subject", &Snapshot{Metadata: Metadata{Increment: 1}}, at)
	biff.AssertNil(err)
	second, err := WriteAt(dir, "Subject", &Snapshot{Metadata: Metadata{Increment: 2}}, at)
	biff.AssertNil(err)

	biff.AssertEqual(filepath.Base(first), "Subject_1700000000.json")
	biff.AssertEqual(filepath.Base(second), "Subject_1700000000_001.json")

	snapshot, _, err := LoadLatest(dir)
	biff.AssertNil(err)
	biff.AssertEqual(snapshot.Metadata.Increment, 2)

	names, err := List(dir)
	biff.AssertNil(err)
	biff.AssertEqual(len(names), 2)
}

func TestLoadLatest_PicksLastByName(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "Subject_1700000000.json"), []byte(`{"data":[],"metadata":{"increment":1}}`), 0666)
	os.WriteFile(filepath.Join(dir, "Subject_1700000100.json"), []byte(`{"data":[{"id":5,"name":"Art"}],"metadata":{"increment":5}}`), 0666)
	os.WriteFile(filepath.Join(dir, ".Subject_abc.tmp"), []byte(`garbage`), 0666)
	os.Mkdir(filepath.Join(dir, "zzz"), 0755)

	snapshot, filename, err := LoadLatest(dir)

	biff.AssertNil(err)
	biff.AssertEqual(filepath.Base(filename), "Subject_1700000100.json")
	biff.AssertEqual(snapshot.Metadata.Increment, 5)
	biff.AssertEqual(len(snapshot.Data), 1)
}

func TestLoadLatest_MissingFields(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{}`), 0666)

	snapshot, _, err := LoadLatest(dir)

	biff.AssertNil(err)
	biff.AssertEqual(snapshot.Metadata.Increment, 0)
	biff.AssertEqual(len(snapshot.Data), 0)
}

func TestLoadLatest_LenientIncrement(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{"data":[],"metadata":{"increment":"7"}}`), 0666)
	os.WriteFile(filepath.Join(dir, "Subject_2.json"), []byte(`{"data":[],"metadata":{"increment":"seven"}}`), 0666)

	snapshot, _, err := LoadLatest(dir)
	biff.AssertNil(err)
	biff.AssertEqual(snapshot.Metadata.Increment, 0)

	os.Remove(filepath.Join(dir, "Subject_2.json"))

	snapshot, _, err = LoadLatest(dir)
	biff.AssertNil(err)
	biff.AssertEqual(snapshot.Metadata.Increment, 7)
}

func TestLoadLatest_Corrupted(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{"data": [`), 0666)

	_, _, err := LoadLatest(dir)

	biff.AssertNotNil(err)
}
