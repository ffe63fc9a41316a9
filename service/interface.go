package service

import (
	"errors"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrLinkNotFound    = errors.New("link not found")
	ErrAlreadyLinked   = errors.New("group and subject are already linked")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidQuery    = errors.New("query must have either filter or example, not both")
	ErrInvalidFilter   = errors.New("invalid filter")
)

type (
	SubjectEntities = Entities[school.Subject, *school.Subject]
	GroupEntities   = Entities[school.GroupStudents, *school.GroupStudents]
	LinkEntities    = Entities[school.LinkGroupSubject, *school.LinkGroupSubject]
)

type Servicer interface {
	Subjects() *SubjectEntities
	Groups() *GroupEntities
	Links() *LinkEntities
	SubjectsOfGroup(groupId int) ([]school.Subject, error)
	GroupsOfSubject(subjectId int) ([]school.GroupStudents, error)
	Save() (map[string]string, error)
	Snapshots() (map[string][]string, error)
}
