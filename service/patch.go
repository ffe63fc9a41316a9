package service

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

var (
	ErrInvalidPatch = errors.New("invalid patch")
	ErrFieldMissing = errors.New("field not found")
)

// Patch sets the given paths (gjson/sjson syntax, like "name") on the
// serializable form of the record and stores the result. The id is never
// changed.
func (e *Entities[T, PT]) Patch(id int, fields map[string]any) (T, error) {
	e.locker.Lock()
	defer e.locker.Unlock()

	current, err := e.get(id)
	if err != nil {
		return current, err
	}

	doc, err := json.Marshal(PT(&current).ToSerializable())
	if err != nil {
		return current, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	for _, path := range utils.GetKeys(fields) {
		doc, err = sjson.SetBytesOptions(doc, path, fields[path], &sjson.Options{Optimistic: true})
		if err != nil {
			return current, fmt.Errorf("%w: '%s': %w", ErrInvalidPatch, path, err)
		}
	}

	items := map[string]any{}
	err = json.Unmarshal(doc, &items)
	if err != nil {
		return current, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	var patched T
	PT(&patched).FromSerializable(items)

	if e.validate != nil {
		if err := e.validate(id, &patched); err != nil {
			var zero T
			return zero, err
		}
	}

	e.repo().Update(id, patched)

	return e.get(id)
}

// Field reads one path from the serializable form of the record.
func (e *Entities[T, PT]) Field(id int, path string) (any, error) {
	e.locker.Lock()
	defer e.locker.Unlock()

	current, err := e.get(id)
	if err != nil {
		return nil, err
	}

	doc, err := json.Marshal(PT(&current).ToSerializable())
	if err != nil {
		return nil, err
	}

	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: '%s'", ErrFieldMissing, path)
	}

	return result.Value(), nil
}
