package service

import (
	"fmt"
	"sync"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/repository"
)

type Query[T any] struct {
	Filter  map[string]any `json:"filter"`
	Example *T             `json:"example"`
}

// Entities exposes one repository with the database lock held around every
// call. Not-found conditions become errors here.
type Entities[T any, PT entity.Record[T]] struct {
	locker   sync.Locker
	repo     func() *repository.Repository[T, PT]
	notFound error

	// validate runs before create (id == entity.Unset) and update
	validate func(id int, record *T) error
	// onRemove runs after a record is removed
	onRemove func(id int)
}

func (e *Entities[T, PT]) List() []T {
	e.locker.Lock()
	defer e.locker.Unlock()

	return e.repo().GetAll()
}

func (e *Entities[T, PT]) Get(id int) (T, error) {
	e.locker.Lock()
	defer e.locker.Unlock()

	return e.get(id)
}

func (e *Entities[T, PT]) get(id int) (T, error) {
	record, found := e.repo().GetById(id)
	if !found {
		return record, e.notFound
	}
	return record, nil
}

func (e *Entities[T, PT]) Create(record T) (T, error) {
	e.locker.Lock()
	defer e.locker.Unlock()

	if e.validate != nil {
		if err := e.validate(entity.Unset, &record); err != nil {
			var zero T
			return zero, err
		}
	}

	id := e.repo().Add(record)

	return e.get(id)
}

func (e *Entities[T, PT]) Update(id int, record T) (T, error) {
	e.locker.Lock()
	defer e.locker.Unlock()

	if current, err := e.get(id); err != nil {
		return current, err
	}

	if e.validate != nil {
		if err := e.validate(id, &record); err != nil {
			var zero T
			return zero, err
		}
	}

	e.repo().Update(id, record)

	return e.get(id)
}

func (e *Entities[T, PT]) Delete(id int) error {
	e.locker.Lock()
	defer e.locker.Unlock()

	if !e.repo().Remove(id) {
		return e.notFound
	}

	if e.onRemove != nil {
		e.onRemove(id)
	}

	return nil
}

// Find runs a query-by-example when Example is set, a filter query
// otherwise.
func (e *Entities[T, PT]) Find(query Query[T]) ([]T, error) {
	e.locker.Lock()
	defer e.locker.Unlock()

	if query.Example != nil {
		if len(query.Filter) > 0 {
			return nil, ErrInvalidQuery
		}
		return e.repo().GetByParameters(*query.Example), nil
	}

	result, err := e.repo().Find(query.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	return result, nil
}
