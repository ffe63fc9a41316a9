package service

import (
	"errors"
	"os"
	"testing"

	"github.com/fulldump/biff"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/database"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

func TestMain(m *testing.M) {
	utils.SetNoLogger()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*Service, *database.Database) {
	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})
	biff.AssertNil(db.Load())
	return NewService(db), db
}

func TestSubjects_CRUD(t *testing.T) {

	s, _ := newTestService(t)

	math, err := s.Subjects().Create(school.NewSubject("  Math "))
	biff.AssertNil(err)
	biff.AssertEqual(math, school.Subject{Id: 0, Name: "Math"})

	_, err = s.Subjects().Create(school.NewSubject(" "))
	biff.AssertEqual(err, ErrEmptyName)

	updated, err := s.Subjects().Update(math.Id, school.Subject{Id: 5, Name: "Algebra"})
	biff.AssertNil(err)
	biff.AssertEqual(updated, school.Subject{Id: 0, Name: "Algebra"})

	_, err = s.Subjects().Update(99, school.NewSubject("Nope"))
	biff.AssertEqual(err, ErrSubjectNotFound)

	got, err := s.Subjects().Get(math.Id)
	biff.AssertNil(err)
	biff.AssertEqual(got.Name, "Algebra")

	biff.AssertNil(s.Subjects().Delete(math.Id))
	biff.AssertEqual(s.Subjects().Delete(math.Id), ErrSubjectNotFound)

	_, err = s.Subjects().Get(math.Id)
	biff.AssertEqual(err, ErrSubjectNotFound)

	biff.AssertEqual(s.Subjects().List(), []school.Subject{})
}

func TestSubjects_Find(t *testing.T) {

	s, _ := newTestService(t)
	s.Subjects().Create(school.NewSubject("Math"))
	s.Subjects().Create(school.NewSubject("History"))
	s.Subjects().Create(school.NewSubject("Math"))

	example := school.NewSubject("Math")
	byExample, err := s.Subjects().Find(Query[school.Subject]{Example: &example})
	biff.AssertNil(err)
	biff.AssertEqual(len(byExample), 2)

	byFilter, err := s.Subjects().Find(Query[school.Subject]{Filter: map[string]any{"name": "History"}})
	biff.AssertNil(err)
	biff.AssertEqual(byFilter, []school.Subject{{Id: 1, Name: "History"}})

	_, err = s.Subjects().Find(Query[school.Subject]{Example: &example, Filter: map[string]any{"id": 0}})
	biff.AssertEqual(err, ErrInvalidQuery)

	_, err = s.Subjects().Find(Query[school.Subject]{Filter: map[string]any{"name": map[string]any{"$nope": 1}}})
	biff.AssertTrue(errors.Is(err, ErrInvalidFilter))
}

func TestLinks(t *testing.T) {

	s, _ := newTestService(t)
	math, _ := s.Subjects().Create(school.NewSubject("Math"))
	history, _ := s.Subjects().Create(school.NewSubject("History"))
	group, _ := s.Groups().Create(school.NewGroup("1A"))

	link, err := s.Links().Create(school.NewLink(group.Id, math.Id))
	biff.AssertNil(err)
	biff.AssertEqual(link, school.LinkGroupSubject{Id: 0, GroupId: group.Id, SubjectId: math.Id})

	_, err = s.Links().Create(school.NewLink(group.Id, math.Id))
	biff.AssertEqual(err, ErrAlreadyLinked)

	_, err = s.Links().Create(school.NewLink(42, math.Id))
	biff.AssertEqual(err, ErrGroupNotFound)

	_, err = s.Links().Create(school.NewLink(group.Id, 42))
	biff.AssertEqual(err, ErrSubjectNotFound)

	_, err = s.Links().Create(school.NewLink(group.Id, history.Id))
	biff.AssertNil(err)

	// Updating a link onto itself is not a duplicate
	_, err = s.Links().Update(link.Id, school.NewLink(group.Id, math.Id))
	biff.AssertNil(err)

	subjects, err := s.SubjectsOfGroup(group.Id)
	biff.AssertNil(err)
	biff.AssertEqual(subjects, []school.Subject{math, history})

	groups, err := s.GroupsOfSubject(history.Id)
	biff.AssertNil(err)
	biff.AssertEqual(groups, []school.GroupStudents{group})

	_, err = s.SubjectsOfGroup(42)
	biff.AssertEqual(err, ErrGroupNotFound)

	_, err = s.GroupsOfSubject(42)
	biff.AssertEqual(err, ErrSubjectNotFound)
}

func TestDeleteSubject_RemovesLinks(t *testing.T) {

	s, _ := newTestService(t)
	math, _ := s.Subjects().Create(school.NewSubject("Math"))
	history, _ := s.Subjects().Create(school.NewSubject("History"))
	a, _ := s.Groups().Create(school.NewGroup("1A"))
	b, _ := s.Groups().Create(school.NewGroup("1B"))
	s.Links().Create(school.NewLink(a.Id, math.Id))
	s.Links().Create(school.NewLink(b.Id, math.Id))
	keep, _ := s.Links().Create(school.NewLink(a.Id, history.Id))

	biff.AssertNil(s.Subjects().Delete(math.Id))

	biff.AssertEqual(s.Links().List(), []school.LinkGroupSubject{keep})
}

func TestDeleteGroup_RemovesLinks(t *testing.T) {

	s, _ := newTestService(t)
	math, _ := s.Subjects().Create(school.NewSubject("Math"))
	a, _ := s.Groups().Create(school.NewGroup("1A"))
	b, _ := s.Groups().Create(school.NewGroup("1B"))
	s.Links().Create(school.NewLink(a.Id, math.Id))
	keep, _ := s.Links().Create(school.NewLink(b.Id, math.Id))

	biff.AssertNil(s.Groups().Delete(a.Id))

	biff.AssertEqual(s.Links().List(), []school.LinkGroupSubject{keep})
}

func TestSave(t *testing.T) {

	s, db := newTestService(t)
	s.Subjects().Create(school.NewSubject("Math"))

	files, err := s.Save()
	biff.AssertNil(err)
	biff.AssertEqual(len(files), 3)

	snapshots, err := s.Snapshots()
	biff.AssertNil(err)
	biff.AssertEqual(len(snapshots["Subject"]), 1)

	reopened := database.NewDatabase(&database.Config{Dir: db.Config.Dir})
	biff.AssertNil(reopened.Load())
	biff.AssertEqual(reopened.Subjects.GetAll(), []school.Subject{{Id: 0, Name: "Math"}})
}
