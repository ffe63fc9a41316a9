package database

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/repository"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

var ErrNotLoaded = errors.New("database is not loaded")

type Config struct {
	Dir        string
	SaveOnStop bool
}

type (
	Subjects = repository.Repository[school.Subject, *school.Subject]
	Groups   = repository.Repository[school.GroupStudents, *school.GroupStudents]
	Links    = repository.Repository[school.LinkGroupSubject, *school.LinkGroupSubject]
)

// Database owns one repository per entity type under Config.Dir.
//
// Repositories are not thread safe: callers hold the embedded mutex around
// every access once the database is operating.
type Database struct {
	sync.Mutex

	Config *Config
	status atomic.Value

	Subjects *Subjects
	Groups   *Groups
	Links    *Links

	exit     chan struct{}
	exitOnce sync.Once
}

func NewDatabase(config *Config) *Database {
	db := &Database{
		Config: config,
		exit:   make(chan struct{}),
	}
	db.status.Store(StatusOpening)

	return db
}

func (db *Database) GetStatus() string {
	return db.status.Load().(string)
}

func (db *Database) Load() error {

	log := utils.GetLogger()
	log.Info("loading database", zap.String("dir", db.Config.Dir))

	t0 := time.Now()

	subjects, err := repository.New[school.Subject](db.Config.Dir)
	if err != nil {
		return db.failLoad(err)
	}
	log.Info("repository loaded", zap.String("type", subjects.TypeName()), zap.Int("records", subjects.Len()), zap.Int("next_id", subjects.NextId()))

	groups, err := repository.New[school.GroupStudents](db.Config.Dir)
	if err != nil {
		return db.failLoad(err)
	}
	log.Info("repository loaded", zap.String("type", groups.TypeName()), zap.Int("records", groups.Len()), zap.Int("next_id", groups.NextId()))

	links, err := repository.New[school.LinkGroupSubject](db.Config.Dir)
	if err != nil {
		return db.failLoad(err)
	}
	log.Info("repository loaded", zap.String("type", links.TypeName()), zap.Int("records", links.Len()), zap.Int("next_id", links.NextId()))

	db.Lock()
	db.Subjects = subjects
	db.Groups = groups
	db.Links = links
	db.Unlock()

	db.status.Store(StatusOperating)
	log.Info("database ready", zap.Duration("took", time.Since(t0)))

	return nil
}

func (db *Database) loaded() bool {
	return db.Subjects != nil && db.Groups != nil && db.Links != nil
}

func (db *Database) failLoad(err error) error {
	utils.GetLogger().Error("load database", zap.Error(err))
	db.status.Store(StatusClosing)
	return err
}

// Save writes a snapshot of every repository and returns the written file
// per type name. Every repository is attempted even if one fails. The caller
// must hold the lock.
func (db *Database) Save() (map[string]string, error) {

	if !db.loaded() {
		return nil, ErrNotLoaded
	}

	log := utils.GetLogger()
	result := map[string]string{}
	var errs []error

	save := func(typeName string, f func() (string, error)) {
		filename, err := f()
		if err != nil {
			log.Error("save repository", zap.String("type", typeName), zap.Error(err))
			errs = append(errs, fmt.Errorf("save '%s': %w", typeName, err))
			return
		}
		log.Info("repository saved", zap.String("type", typeName), zap.String("file", filename))
		result[typeName] = filename
	}

	save(db.Subjects.TypeName(), db.Subjects.Save)
	save(db.Groups.TypeName(), db.Groups.Save)
	save(db.Links.TypeName(), db.Links.Save)

	return result, errors.Join(errs...)
}

// Snapshots lists the snapshot history per type name. The caller must hold
// the lock.
func (db *Database) Snapshots() (map[string][]string, error) {

	if !db.loaded() {
		return nil, ErrNotLoaded
	}

	result := map[string][]string{}

	for _, r := range []interface {
		TypeName() string
		Snapshots() ([]string, error)
	}{db.Subjects, db.Groups, db.Links} {
		names, err := r.Snapshots()
		if err != nil {
			return nil, err
		}
		result[r.TypeName()] = names
	}

	return result, nil
}

// Start loads the database and blocks until Stop.
func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

// Stop releases Start. Data is saved only when Config.SaveOnStop is set;
// otherwise unsaved changes are lost.
func (db *Database) Stop() error {

	defer db.exitOnce.Do(func() {
		close(db.exit)
	})

	wasOperating := db.GetStatus() == StatusOperating
	db.status.Store(StatusClosing)

	if !db.Config.SaveOnStop || !wasOperating {
		return nil
	}

	db.Lock()
	defer db.Unlock()

	_, err := db.Save()
	return err
}
