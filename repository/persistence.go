package repository

import (
	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/storage"
)

// Load replaces the in-memory state with the latest snapshot on disk, or with
// an empty collection when there is none. New calls it once.
//
// The persisted increment is the next id to assign. Snapshots written with
// "last assigned id" semantics are tolerated: nextId never falls below the
// highest loaded id + 1. Records stored without a valid id, and records
// repeating an id already loaded from the same file, get a fresh one. A
// missing id decodes to 0, so it is kept only while 0 is still free.
func (r *Repository[T, PT]) Load() error {

	snapshot, _, err := storage.LoadLatest(r.storageDir)
	if err != nil {
		return err
	}

	rows := newContainer[T]()
	nextId := 0

	if snapshot != nil {
		if snapshot.Metadata.Increment > 0 {
			nextId = snapshot.Metadata.Increment
		}

		records := make([]T, 0, len(snapshot.Data))
		for _, item := range snapshot.Data {
			t := entity.New[T, PT]()
			PT(&t).FromSerializable(item)
			if id := PT(&t).GetId(); id >= nextId {
				nextId = id + 1
			}
			records = append(records, t)
		}

		seen := make(map[int]bool, len(records))
		for _, t := range records {
			id := PT(&t).GetId()
			if id < 0 || seen[id] {
				id = nextId
				nextId++
				PT(&t).SetId(id)
			}
			seen[id] = true
			rows.Append(id, t)
		}
	}

	r.rows = rows
	r.nextId = nextId

	return nil
}

// Save writes the whole collection to a new snapshot file and returns its
// path. A failed save leaves the repository untouched.
func (r *Repository[T, PT]) Save() (string, error) {

	snapshot := &storage.Snapshot{
		Data: make([]map[string]any, 0, r.rows.Len()),
		Metadata: storage.Metadata{
			Increment: r.nextId,
		},
	}

	r.rows.Traverse(func(row *Row[T]) bool {
		value := row.Value
		snapshot.Data = append(snapshot.Data, PT(&value).ToSerializable())
		return true
	})

	return storage.Write(r.storageDir, r.typeName, snapshot)
}

// Snapshots lists the snapshot history of this repository, oldest first.
func (r *Repository[T, PT]) Snapshots() ([]string, error) {
	return storage.List(r.storageDir)
}
