package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgdelta/pgdelta/pkg/interval"
)

func TestOverrun(t *testing.T) {
	entry := NewTimeEntry("task", interval.Delta{Hours: 2})
	assert.False(t, entry.Overrun(), "no spent value recorded yet")

	entry.Spent = interval.New(interval.Delta{Hours: 2})
	assert.False(t, entry.Overrun(), "spent equals estimate")

	entry.Spent = interval.New(interval.Delta{Hours: 2, Microseconds: 1})
	assert.True(t, entry.Overrun())
}

func TestSortByEstimate(t *testing.T) {
	list := TimeEntryList{
		*NewTimeEntry("month", interval.Delta{Months: 1}),
		*NewTimeEntry("forty-days", interval.Delta{Days: 40}),
		*NewTimeEntry("hour", interval.Delta{Hours: 1}),
		{Name: "unestimated"},
	}

	list.SortByEstimate()

	assert.Equal(t, []string{"unestimated", "hour", "forty-days", "month"}, list.Names())
}
