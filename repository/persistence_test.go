package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fulldump/biff"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
)

func TestSave_RoundTrip(t *testing.T) {
	Environment(func(root string) {

		r := openSubjects(root)
		r.Add(school.NewSubject("Math"))
		r.Add(school.NewSubject("History"))
		r.Add(school.NewSubject("Art"))
		r.Remove(2)
		r.Update(0, school.NewSubject("Algebra"))

		filename, err := r.Save()
		biff.AssertNil(err)
		biff.AssertEqual(filepath.Dir(filename), r.StorageDir())

		reopened := openSubjects(root)

		biff.AssertEqual(reopened.GetAll(), r.GetAll())
		biff.AssertEqual(reopened.NextId(), r.NextId())
		biff.AssertEqual(reopened.Add(school.NewSubject("Music")), 3)
	})
}

func TestSave_EmptyRepository(t *testing.T) {
	Environment(func(root string) {

		r := openSubjects(root)
		_, err := r.Save()
		biff.AssertNil(err)

		reopened := openSubjects(root)
		biff.AssertEqual(reopened.Len(), 0)
		biff.AssertEqual(reopened.NextId(), 0)
	})
}

func TestSave_KeepsHistory(t *testing.T) {
	Environment(func(root string) {

		r := openSubjects(root)
		r.Add(school.NewSubject("Math"))
		_, err := r.Save()
		biff.AssertNil(err)

		r.Add(school.NewSubject("History"))
		_, err = r.Save()
		biff.AssertNil(err)

		snapshots, err := r.Snapshots()
		biff.AssertNil(err)
		biff.AssertEqual(len(snapshots), 2)

		reopened := openSubjects(root)
		biff.AssertEqual(reopened.Len(), 2)
	})
}

func TestSave_Failure(t *testing.T) {
	Environment(func(root string) {

		r := openSubjects(root)
		r.Add(school.NewSubject("Math"))

		biff.AssertNil(os.RemoveAll(r.StorageDir()))

		_, err := r.Save()
		biff.AssertNotNil(err)

		// memory is untouched
		biff.AssertEqual(r.GetAll(), []school.Subject{{Id: 0, Name: "Math"}})
		biff.AssertEqual(r.NextId(), 1)
	})
}

func TestLoad_LatestWins(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1700000000.json"), []byte(`{
			"data": [{"id": 0, "name": "Old"}],
			"metadata": {"increment": 1}
		}`), 0666)
		os.WriteFile(filepath.Join(dir, "Subject_1700000500.json"), []byte(`{
			"data": [{"id": 5, "name": "Art"}],
			"metadata": {"increment": 5}
		}`), 0666)

		r := openSubjects(root)

		biff.AssertEqual(r.GetAll(), []school.Subject{{Id: 5, Name: "Art"}})

		id := r.Add(school.NewSubject("Music"))
		biff.AssertEqual(id, 6)
		biff.AssertEqual(len(r.GetByParameters(school.NewSubject("Art"))), 1)
	})
}

func TestLoad_LegacyStringIds(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1600000000.json"), []byte(`{
			"data": [{"id": "0", "name": "Math"}, {"id": "3", "name": "History"}],
			"metadata": {"increment": 3}
		}`), 0666)

		r := openSubjects(root)

		biff.AssertEqual(r.GetAll(), []school.Subject{
			{Id: 0, Name: "Math"},
			{Id: 3, Name: "History"},
		})
		biff.AssertEqual(r.NextId(), 4)
	})
}

func TestLoad_MissingFields(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{"data": [{"name": "Math"}, {"id": -1, "name": "Art"}]}`), 0666)

		r := openSubjects(root)

		biff.AssertEqual(r.GetAll(), []school.Subject{
			{Id: 0, Name: "Math"},
			{Id: 1, Name: "Art"},
		})
		biff.AssertEqual(r.NextId(), 2)
	})
}

func TestLoad_MissingIdDoesNotCollide(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{"data": [{"id": 0, "name": "Math"}, {"name": "Art"}], "metadata": {"increment": 1}}`), 0666)

		r := openSubjects(root)

		biff.AssertEqual(r.GetAll(), []school.Subject{
			{Id: 0, Name: "Math"},
			{Id: 1, Name: "Art"},
		})
		biff.AssertEqual(r.NextId(), 2)

		biff.AssertTrue(r.Remove(0))

		_, found := r.GetById(0)
		biff.AssertFalse(found)

		art, found := r.GetById(1)
		biff.AssertTrue(found)
		biff.AssertEqual(art, school.Subject{Id: 1, Name: "Art"})
	})
}

func TestLoad_DuplicatedIds(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{"data": [{"id": 3, "name": "A"}, {"id": 3, "name": "B"}]}`), 0666)

		r := openSubjects(root)

		biff.AssertEqual(r.GetAll(), []school.Subject{
			{Id: 3, Name: "A"},
			{Id: 4, Name: "B"},
		})
		biff.AssertEqual(r.NextId(), 5)
	})
}

func TestLoad_IncrementAsString(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`{"data": [{"id": 0, "name": "Math"}], "metadata": {"increment": "5"}}`), 0666)

		r := openSubjects(root)

		biff.AssertEqual(r.GetAll(), []school.Subject{
			{Id: 0, Name: "Math"},
		})
		biff.AssertEqual(r.NextId(), 5)
	})
}

func TestLoad_Corrupted(t *testing.T) {
	Environment(func(root string) {

		dir := filepath.Join(root, "Subject")
		os.MkdirAll(dir, 0755)
		os.WriteFile(filepath.Join(dir, "Subject_1.json"), []byte(`not json`), 0666)

		_, err := New[school.Subject](root)

		biff.AssertNotNil(err)
	})
}

func TestLoad_IndependentRoots(t *testing.T) {
	Environment(func(a string) {
		Environment(func(b string) {

			ra := openSubjects(a)
			rb := openSubjects(b)

			ra.Add(school.NewSubject("Math"))
			ra.Add(school.NewSubject("History"))

			biff.AssertEqual(rb.Add(school.NewSubject("Art")), 0)
		})
	})
}
