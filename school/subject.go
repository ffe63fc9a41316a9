// Package school holds the entities managed by the application: subjects,
// student groups and the links between them.
package school

import (
	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
)

type Subject struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func NewSubject(name string) Subject {
	return Subject{
		Id:   entity.Unset,
		Name: name,
	}
}

func (s *Subject) ClassName() string {
	return "Subject"
}

func (s *Subject) GetId() int {
	return s.Id
}

func (s *Subject) SetId(id int) {
	s.Id = id
}

func (s *Subject) ToSerializable() map[string]any {
	return map[string]any{
		"id":   s.Id,
		"name": s.Name,
	}
}

func (s *Subject) FromSerializable(items map[string]any) {
	s.Id = entity.Int(items, "id")
	s.Name = entity.String(items, "name")
}

// Equal compares by name, so a template built with NewSubject("Math") finds
// every subject called Math.
func (s *Subject) Equal(other *Subject) bool {
	return s.Name == other.Name
}
