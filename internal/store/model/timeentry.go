package model

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/pgdelta/pgdelta/pkg/interval"
)

// TimeEntry is a worked example of interval columns in a model: a named task
// with an estimated and an actually-spent duration. On postgres both columns
// are INTERVAL; on other dialects they are BIGINT microseconds.
type TimeEntry struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`

	Notes *string

	Estimate interval.Interval
	Spent    interval.Interval

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TimeEntryList []TimeEntry

func (e TimeEntry) String() string {
	val, _ := json.Marshal(e)
	return string(val)
}

// NewTimeEntry builds an entry with a fresh id and a valid estimate.
func NewTimeEntry(name string, estimate interval.Delta) *TimeEntry {
	return &TimeEntry{
		ID:       uuid.New(),
		Name:     name,
		Estimate: interval.New(estimate),
	}
}

// Overrun reports whether more time was spent than estimated, under the
// lexicographic component ordering. Entries missing either value never
// overrun.
func (e TimeEntry) Overrun() bool {
	if !e.Estimate.Valid || !e.Spent.Valid {
		return false
	}
	return interval.Compare(e.Spent.Delta, e.Estimate.Delta) > 0
}

// SortByEstimate orders the list by the estimate sort key. NULL estimates
// sort as the zero delta, i.e. first.
func (el TimeEntryList) SortByEstimate() {
	sort.SliceStable(el, func(i, j int) bool {
		return interval.Compare(el[i].Estimate.DeltaOrZero(), el[j].Estimate.DeltaOrZero()) < 0
	})
}

// Names lists the entry names in list order.
func (el TimeEntryList) Names() []string {
	return lo.Map(el, func(e TimeEntry, _ int) string { return e.Name })
}
