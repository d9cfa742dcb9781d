package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date representa um dia do calendário, sem hora. O valor interno sempre fica
// à meia-noite do fuso em que foi criado.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf trunca o instante para o dia do calendário no seu próprio fuso
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.t.AddDate(0, 0, days))
}

func (d Date) key() int {
	y, m, day := d.t.Date()
	return y*10000 + int(m)*100 + day
}

func (d Date) Before(other Date) bool {
	return d.key() < other.key()
}

func (d Date) After(other Date) bool {
	return d.key() > other.key()
}

func (d Date) Equal(other Date) bool {
	return d.key() == other.key()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	// Aceita tanto "2006-01-02" quanto timestamps completos
	parsed, err := ParseDate(s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return fmt.Errorf("data inválida %q: esperado formato YYYY-MM-DD", s)
		}
		parsed = DateOf(ts)
	}

	*d = parsed
	return nil
}

// Value implementa driver.Valuer para colunas DATE
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implementa sql.Scanner para colunas DATE
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("tipo não suportado para Date: %T", src)
	}
	return nil
}
