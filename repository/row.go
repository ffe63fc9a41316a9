package repository

import (
	"math"

	"github.com/google/btree"
)

type Row[T any] struct {
	Seq   int64 // insertion order
	Id    int
	Value T
}

// container keeps rows in insertion order and indexes them by (Id, Seq) so
// the first row of a given id is found without a full scan.
type container[T any] struct {
	rows *btree.BTreeG[*Row[T]]
	ids  *btree.BTreeG[*Row[T]]
	seq  int64
}

func newContainer[T any]() *container[T] {
	return &container[T]{
		rows: btree.NewG(32, func(a, b *Row[T]) bool {
			return a.Seq < b.Seq
		}),
		ids: btree.NewG(32, func(a, b *Row[T]) bool {
			if a.Id != b.Id {
				return a.Id < b.Id
			}
			return a.Seq < b.Seq
		}),
	}
}

func (c *container[T]) Append(id int, value T) *Row[T] {
	c.seq++
	row := &Row[T]{
		Seq:   c.seq,
		Id:    id,
		Value: value,
	}
	c.rows.ReplaceOrInsert(row)
	c.ids.ReplaceOrInsert(row)
	return row
}

// First returns the earliest inserted row with the given id.
func (c *container[T]) First(id int) (*Row[T], bool) {
	var found *Row[T]
	c.ids.AscendGreaterOrEqual(&Row[T]{Id: id, Seq: math.MinInt64}, func(row *Row[T]) bool {
		if row.Id == id {
			found = row
		}
		return false
	})
	return found, found != nil
}

func (c *container[T]) Delete(row *Row[T]) {
	c.rows.Delete(row)
	c.ids.Delete(row)
}

func (c *container[T]) Len() int {
	return c.rows.Len()
}

func (c *container[T]) Traverse(iterator func(row *Row[T]) bool) {
	c.rows.Ascend(iterator)
}
