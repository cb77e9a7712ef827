package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pgdelta/pgdelta/internal/pderrors"
	"github.com/pgdelta/pgdelta/internal/store/model"
	"github.com/pgdelta/pgdelta/pkg/interval"
)

type TimeEntryStore interface {
	InitialMigration() error

	Create(ctx context.Context, entry *model.TimeEntry) error
	Get(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error)
	GetByName(ctx context.Context, name string) (*model.TimeEntry, error)
	List(ctx context.Context, opts ListOptions) (model.TimeEntryList, error)
	UpdateSpent(ctx context.Context, id uuid.UUID, spent interval.Delta) (*model.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListOptions narrows and orders List results. Ordering by estimate happens
// in Go with the component-wise comparator, so it behaves identically on
// postgres INTERVAL columns and BIGINT fallbacks.
type ListOptions struct {
	OrderByEstimate bool
	OverrunOnly     bool
}

type timeEntryStore struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewTimeEntryStore(db *gorm.DB, log logrus.FieldLogger) TimeEntryStore {
	return &timeEntryStore{db: db, log: log}
}

func (s *timeEntryStore) InitialMigration() error {
	s.log.Debug("migrating time entries")
	return s.db.AutoMigrate(&model.TimeEntry{})
}

func (s *timeEntryStore) Create(ctx context.Context, entry *model.TimeEntry) error {
	if entry == nil {
		return pderrors.ErrEntryIsNil
	}
	result := s.db.WithContext(ctx).Create(entry)
	return pderrors.ErrorFromGormError(result.Error)
}

func (s *timeEntryStore) Get(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	result := s.db.WithContext(ctx).First(&entry, "id = ?", id)
	if result.Error != nil {
		return nil, pderrors.ErrorFromGormError(result.Error)
	}
	return &entry, nil
}

func (s *timeEntryStore) GetByName(ctx context.Context, name string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	result := s.db.WithContext(ctx).First(&entry, "name = ?", name)
	if result.Error != nil {
		return nil, pderrors.ErrorFromGormError(result.Error)
	}
	return &entry, nil
}

func (s *timeEntryStore) List(ctx context.Context, opts ListOptions) (model.TimeEntryList, error) {
	var entries model.TimeEntryList
	result := s.db.WithContext(ctx).Order("name").Find(&entries)
	if result.Error != nil {
		return nil, pderrors.ErrorFromGormError(result.Error)
	}
	if opts.OverrunOnly {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Overrun() {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if opts.OrderByEstimate {
		entries.SortByEstimate()
	}
	return entries, nil
}

func (s *timeEntryStore) UpdateSpent(ctx context.Context, id uuid.UUID, spent interval.Delta) (*model.TimeEntry, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Spent = interval.New(spent)
	result := s.db.WithContext(ctx).Model(entry).Update("spent", entry.Spent)
	if result.Error != nil {
		return nil, pderrors.ErrorFromGormError(result.Error)
	}
	return entry, nil
}

func (s *timeEntryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.TimeEntry{}, "id = ?", id)
	if result.Error != nil {
		return pderrors.ErrorFromGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return pderrors.ErrNotFound
	}
	return nil
}
