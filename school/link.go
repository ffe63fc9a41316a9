package school

import (
	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
)

// LinkGroupSubject is one edge of the group/subject many-to-many relation.
type LinkGroupSubject struct {
	Id        int `json:"id"`
	GroupId   int `json:"groupId"`
	SubjectId int `json:"subjectId"`
}

func NewLink(groupId, subjectId int) LinkGroupSubject {
	return LinkGroupSubject{
		Id:        entity.Unset,
		GroupId:   groupId,
		SubjectId: subjectId,
	}
}

func (l *LinkGroupSubject) ClassName() string {
	return "LinkGroupSubject"
}

func (l *LinkGroupSubject) GetId() int {
	return l.Id
}

func (l *LinkGroupSubject) SetId(id int) {
	l.Id = id
}

func (l *LinkGroupSubject) ToSerializable() map[string]any {
	return map[string]any{
		"id":        l.Id,
		"groupId":   l.GroupId,
		"subjectId": l.SubjectId,
	}
}

func (l *LinkGroupSubject) FromSerializable(items map[string]any) {
	l.Id = entity.Int(items, "id")
	l.GroupId = entity.Int(items, "groupId")
	l.SubjectId = entity.Int(items, "subjectId")
}

// Equal compares the linked pair; the link id does not take part.
func (l *LinkGroupSubject) Equal(other *LinkGroupSubject) bool {
	return l.GroupId == other.GroupId && l.SubjectId == other.SubjectId
}
