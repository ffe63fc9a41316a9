package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/database"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

type Service struct {
	db *database.Database

	subjects *SubjectEntities
	groups   *GroupEntities
	links    *LinkEntities
}

func NewService(db *database.Database) *Service {

	s := &Service{
		db: db,
	}

	s.subjects = &SubjectEntities{
		locker:   db,
		repo:     func() *database.Subjects { return db.Subjects },
		notFound: ErrSubjectNotFound,
		validate: func(id int, subject *school.Subject) error {
			return validateName(&subject.Name)
		},
		onRemove: func(id int) {
			s.unlink("subjectId", id)
		},
	}

	s.groups = &GroupEntities{
		locker:   db,
		repo:     func() *database.Groups { return db.Groups },
		notFound: ErrGroupNotFound,
		validate: func(id int, group *school.GroupStudents) error {
			return validateName(&group.Name)
		},
		onRemove: func(id int) {
			s.unlink("groupId", id)
		},
	}

	s.links = &LinkEntities{
		locker:   db,
		repo:     func() *database.Links { return db.Links },
		notFound: ErrLinkNotFound,
		validate: s.validateLink,
	}

	return s
}

func (s *Service) Subjects() *SubjectEntities {
	return s.subjects
}

func (s *Service) Groups() *GroupEntities {
	return s.groups
}

func (s *Service) Links() *LinkEntities {
	return s.links
}

func validateName(name *string) error {
	*name = strings.TrimSpace(*name)
	if *name == "" {
		return ErrEmptyName
	}
	return nil
}

func (s *Service) validateLink(id int, link *school.LinkGroupSubject) error {

	if _, found := s.db.Groups.GetById(link.GroupId); !found {
		return ErrGroupNotFound
	}

	if _, found := s.db.Subjects.GetById(link.SubjectId); !found {
		return ErrSubjectNotFound
	}

	for _, existing := range s.db.Links.GetByParameters(*link) {
		if existing.Id != id {
			return ErrAlreadyLinked
		}
	}

	return nil
}

// unlink removes the links whose field equals id. The lock is held.
func (s *Service) unlink(field string, id int) {

	links, err := s.db.Links.Find(map[string]any{field: id})
	if err != nil {
		utils.GetLogger().Error("unlink", zap.String("field", field), zap.Int("id", id), zap.Error(err))
		return
	}

	for _, link := range links {
		s.db.Links.Remove(link.Id)
	}
}

func (s *Service) SubjectsOfGroup(groupId int) ([]school.Subject, error) {
	s.db.Lock()
	defer s.db.Unlock()

	if _, found := s.db.Groups.GetById(groupId); !found {
		return nil, ErrGroupNotFound
	}

	result := []school.Subject{}
	for _, link := range s.db.Links.All() {
		if link.GroupId != groupId {
			continue
		}
		if subject, found := s.db.Subjects.GetById(link.SubjectId); found {
			result = append(result, subject)
		}
	}

	return result, nil
}

func (s *Service) GroupsOfSubject(subjectId int) ([]school.GroupStudents, error) {
	s.db.Lock()
	defer s.db.Unlock()

	if _, found := s.db.Subjects.GetById(subjectId); !found {
		return nil, ErrSubjectNotFound
	}

	result := []school.GroupStudents{}
	s.db.Links.Traverse(func(link school.LinkGroupSubject) bool {
		if link.SubjectId != subjectId {
			return true
		}
		if group, found := s.db.Groups.GetById(link.GroupId); found {
			result = append(result, group)
		}
		return true
	})

	return result, nil
}

func (s *Service) Save() (map[string]string, error) {
	s.db.Lock()
	defer s.db.Unlock()

	return s.db.Save()
}

func (s *Service) Snapshots() (map[string][]string, error) {
	s.db.Lock()
	defer s.db.Unlock()

	return s.db.Snapshots()
}
