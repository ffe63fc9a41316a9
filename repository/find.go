package repository

import (
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

// Find returns the records whose serializable form matches a mongo-like
// filter, for example {"name": {"$in": ["Math", "History"]}}. An empty filter
// matches everything.
func (r *Repository[T, PT]) Find(filter map[string]any) ([]T, error) {

	result := []T{}

	if len(filter) == 0 {
		return r.GetAll(), nil
	}

	conditions := map[string]interface{}{}
	err := utils.Remarshal(filter, &conditions)
	if err != nil {
		return nil, fmt.Errorf("normalize filter: %w", err)
	}

	r.rows.Traverse(func(row *Row[T]) bool {
		value := row.Value

		// numbers as float64, like a decoded snapshot
		rowData := utils.RemarshalMap(PT(&value).ToSerializable())

		var match bool
		match, err = connor.Match(conditions, rowData)
		if err != nil {
			err = fmt.Errorf("match: %w", err)
			return false
		}
		if match {
			result = append(result, value)
		}
		return true
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
