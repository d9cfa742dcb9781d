package utils

import "time"

// StartOfDay trunca o instante para a meia-noite do fuso informado
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ParseDateIn interpreta uma data YYYY-MM-DD no fuso informado. String vazia
// retorna nil.
func ParseDateIn(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
