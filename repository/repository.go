// Package repository implements a generic in-memory record store persisted as
// JSON snapshots.
//
// A Repository is not safe for concurrent use. Reads and writes happen in
// memory; nothing reaches the disk until Save is called, and nothing is saved
// when the owner drops the repository.
package repository

import (
	"fmt"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/storage"
)

type Repository[T any, PT entity.Record[T]] struct {
	typeName   string
	storageDir string

	// nextId is greater than every id assigned so far
	nextId int
	rows   *container[T]
}

// New opens the repository of T under root: the type is validated, the
// directory <root>/<ClassName> is created if needed and the latest snapshot
// is loaded.
func New[T any, PT entity.Record[T]](root string) (*Repository[T, PT], error) {

	typeName, err := entity.Validate[T, PT]()
	if err != nil {
		return nil, err
	}

	dir, err := storage.EnsureLayout(root, typeName)
	if err != nil {
		return nil, err
	}

	r := &Repository[T, PT]{
		typeName:   typeName,
		storageDir: dir,
		rows:       newContainer[T](),
	}

	err = r.Load()
	if err != nil {
		return nil, fmt.Errorf("load '%s': %w", typeName, err)
	}

	return r, nil
}

func (r *Repository[T, PT]) TypeName() string {
	return r.typeName
}

func (r *Repository[T, PT]) StorageDir() string {
	return r.storageDir
}

// NextId is the id the next Add will assign.
func (r *Repository[T, PT]) NextId() int {
	return r.nextId
}

func (r *Repository[T, PT]) Len() int {
	return r.rows.Len()
}

// Add assigns the next id to record, appends it and returns the id. Any id
// set by the caller is ignored.
func (r *Repository[T, PT]) Add(record T) int {
	id := r.nextId
	r.nextId++

	PT(&record).SetId(id)
	r.rows.Append(id, record)

	return id
}

// Remove deletes the first record with the given id and reports whether it
// existed.
func (r *Repository[T, PT]) Remove(id int) bool {
	row, found := r.rows.First(id)
	if !found {
		return false
	}
	r.rows.Delete(row)
	return true
}

// Update replaces the record with the given id in place. The stored record
// keeps id whatever id the caller set on record.
func (r *Repository[T, PT]) Update(id int, record T) bool {
	row, found := r.rows.First(id)
	if !found {
		return false
	}
	PT(&record).SetId(id)
	row.Value = record
	return true
}

func (r *Repository[T, PT]) GetById(id int) (T, bool) {
	row, found := r.rows.First(id)
	if !found {
		var zero T
		return zero, false
	}
	return row.Value, true
}

// GetByParameters returns every record Equal to template, in collection
// order. It is a full scan.
func (r *Repository[T, PT]) GetByParameters(template T) []T {
	result := []T{}
	r.rows.Traverse(func(row *Row[T]) bool {
		value := row.Value
		if PT(&value).Equal(&template) {
			result = append(result, value)
		}
		return true
	})
	return result
}

// GetAll returns a copy of the collection in insertion order.
func (r *Repository[T, PT]) GetAll() []T {
	result := make([]T, 0, r.rows.Len())
	r.rows.Traverse(func(row *Row[T]) bool {
		result = append(result, row.Value)
		return true
	})
	return result
}

// Traverse calls f for every record in insertion order until f returns
// false. The repository must not be modified from f.
func (r *Repository[T, PT]) Traverse(f func(record T) bool) {
	r.rows.Traverse(func(row *Row[T]) bool {
		return f(row.Value)
	})
}
