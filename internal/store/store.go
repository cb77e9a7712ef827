package store

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store bundles the data stores backed by one database handle.
type Store interface {
	TimeEntry() TimeEntryStore
	InitialMigration() error
	Close() error
}

type DataStore struct {
	timeEntry TimeEntryStore
	db        *gorm.DB
}

func NewStore(db *gorm.DB, log logrus.FieldLogger) Store {
	return &DataStore{
		timeEntry: NewTimeEntryStore(db, log),
		db:        db,
	}
}

func (s *DataStore) TimeEntry() TimeEntryStore {
	return s.timeEntry
}

func (s *DataStore) InitialMigration() error {
	return s.TimeEntry().InitialMigration()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
