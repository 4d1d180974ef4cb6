package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly maps a Postgres DATE column to a plain "YYYY-MM-DD" JSON string,
// dropping the time-of-day and zone entirely.
type DateOnly struct{ time.Time }

func FromTime(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Parse(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan accepts time.Time or string from the driver.
func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = FromTime(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dateonly: unsupported Scan type %T", v)
	}
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}

// GormDataType tells the migrator to create a DATE column.
func (DateOnly) GormDataType() string {
	return "date"
}
