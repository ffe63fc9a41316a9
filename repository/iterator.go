package repository

import (
	"iter"
)

// All iterates over (id, record) pairs in insertion order. The sequence is
// invalidated by Add and Remove.
func (r *Repository[T, PT]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		r.rows.Traverse(func(row *Row[T]) bool {
			return yield(row.Id, row.Value)
		})
	}
}

// Ids iterates over the ids in insertion order.
func (r *Repository[T, PT]) Ids() iter.Seq[int] {
	return func(yield func(int) bool) {
		r.rows.Traverse(func(row *Row[T]) bool {
			return yield(row.Id)
		})
	}
}
