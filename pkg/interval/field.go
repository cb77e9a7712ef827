package interval

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5/pgtype"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Interval is the database field wrapper around Delta: a Delta plus SQL NULL
// handling. Declare it as a model column and GORM maps it to the native
// INTERVAL type on postgres and to BIGINT microseconds on every other
// dialect:
//
//	type TimeEntry struct {
//		Spent interval.Interval
//	}
type Interval struct {
	Delta Delta
	Valid bool
}

// New returns a valid Interval holding d.
func New(d Delta) Interval {
	return Interval{Delta: d, Valid: true}
}

// DeltaOrZero returns the held delta, or the zero delta for SQL NULL.
func (i Interval) DeltaOrZero() Delta {
	if !i.Valid {
		return Delta{}
	}
	return i.Delta
}

// Scan implements sql.Scanner. It accepts everything a driver may hand
// back for an interval column: NULL, BIGINT microseconds, the strict text
// form, the postgres literal form, the pgx binary triple, and for
// programmatic assignment time.Duration, Delta and Interval themselves.
// An empty string counts as NULL, not as the zero delta.
func (i *Interval) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*i = Interval{}
		return nil
	case int64:
		*i = New(FromMicros(v))
		return nil
	case float64:
		*i = New(FromMicros(int64(v)))
		return nil
	case string:
		return i.scanString(v)
	case []byte:
		return i.scanString(string(v))
	case time.Duration:
		*i = New(FromDuration(v))
		return nil
	case pgtype.Interval:
		var d Delta
		if !v.Valid {
			*i = Interval{}
			return nil
		}
		if err := d.ScanInterval(v); err != nil {
			return err
		}
		*i = New(d)
		return nil
	case Delta:
		*i = New(v)
		return nil
	case Interval:
		*i = v
		return nil
	default:
		return fmt.Errorf("cannot scan %T into interval.Interval", value)
	}
}

// scanString accepts an integer as BIGINT microseconds, then tries the
// strict human form, then falls back to the postgres literal form, but only
// for text the strict grammar could never mean: strings with unit words or a
// sign prefix. A plain clock value with an out-of-range component keeps the
// strict parser's error instead of sliding through the lenient postgres
// regexes.
func (i *Interval) scanString(s string) error {
	if s == "" {
		*i = Interval{}
		return nil
	}
	if micros, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = New(FromMicros(micros))
		return nil
	}
	if s == "00:00:00" {
		*i = New(Delta{})
		return nil
	}
	d, parseErr := Parse(s)
	if parseErr == nil {
		*i = New(d)
		return nil
	}
	if looksLikePostgres(s) {
		d, err := ParsePostgres(s)
		if err == nil && !d.IsZero() {
			*i = New(d)
			return nil
		}
	}
	return parseErr
}

func looksLikePostgres(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter) ||
		strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")
}

// Value implements driver.Valuer with the portable encoding, BIGINT
// microseconds. Dialect-aware serialization happens in GormValue; plain
// database/sql users on postgres should write PostgresString values
// themselves or use the pgx binding.
func (i Interval) Value() (driver.Value, error) {
	if !i.Valid {
		return nil, nil
	}
	return i.Delta.Micros()
}

// GormDataType reports the generic schema type name.
func (Interval) GormDataType() string {
	return "interval"
}

// GormDBDataType picks the column type per dialect: the native INTERVAL
// type on postgres, BIGINT everywhere else.
func (Interval) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "INTERVAL"
	}
	return "BIGINT"
}

// GormValue serializes per dialect at statement build time: an interval
// literal on postgres, BIGINT microseconds elsewhere. Values that cannot be
// flattened for a BIGINT dialect (years or months set) fail the statement.
func (i Interval) GormValue(_ context.Context, db *gorm.DB) clause.Expr {
	if !i.Valid {
		return clause.Expr{SQL: "?", Vars: []any{nil}}
	}
	if db.Dialector.Name() == "postgres" {
		return clause.Expr{SQL: "?::interval", Vars: []any{i.Delta.PostgresString()}}
	}
	micros, err := i.Delta.Micros()
	if err != nil {
		db.AddError(err)
		return clause.Expr{SQL: "?", Vars: []any{nil}}
	}
	return clause.Expr{SQL: "?", Vars: []any{micros}}
}

// MarshalJSON renders the strict text form, or null for SQL NULL.
func (i Interval) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Delta.String())
}

func (i *Interval) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*i = Interval{}
		return nil
	}
	return i.scanString(*s)
}
