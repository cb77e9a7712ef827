package pderrors

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// value errors
	ErrFormat        = errors.New("malformed interval text")
	ErrRange         = errors.New("component out of range")
	ErrBounds        = errors.New("min_value >= max_value")
	ErrCalendarUnits = errors.New("years/months have no fixed length")
	ErrOverflow      = errors.New("interval does not fit the target encoding")
	ErrNull          = errors.New("value is NULL")

	// store
	ErrEntryIsNil   = errors.New("entry is nil")
	ErrNotFound     = errors.New("entry not found")
	ErrDuplicateKey = errors.New("an entry with this key already exists")
)

func ErrorFromGormError(err error) error {
	switch err {
	case nil:
		return nil
	case gorm.ErrRecordNotFound:
		return ErrNotFound
	case gorm.ErrDuplicatedKey:
		return ErrDuplicateKey
	default:
		return err
	}
}
