package school

import (
	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
)

// GroupStudents is a group of students attending the same subjects.
type GroupStudents struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func NewGroup(name string) GroupStudents {
	return GroupStudents{
		Id:   entity.Unset,
		Name: name,
	}
}

func (g *GroupStudents) ClassName() string {
	return "GroupStudents"
}

func (g *GroupStudents) GetId() int {
	return g.Id
}

func (g *GroupStudents) SetId(id int) {
	g.Id = id
}

func (g *GroupStudents) ToSerializable() map[string]any {
	return map[string]any{
		"id":   g.Id,
		"name": g.Name,
	}
}

func (g *GroupStudents) FromSerializable(items map[string]any) {
	g.Id = entity.Int(items, "id")
	g.Name = entity.String(items, "name")
}

func (g *GroupStudents) Equal(other *GroupStudents) bool {
	return g.Name == other.Name
}
