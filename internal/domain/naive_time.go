package domain

import (
	"bytes"
	"fmt"
	"time"
)

// NaiveTimeLayout — формат метки времени без часового пояса (как присылает продюсер).
// Дробная часть секунд необязательна.
const NaiveTimeLayout = "2006-01-02T15:04:05.999999999"

// NaiveTime — timestamp without time zone.
// Внутри хранится time.Time в UTC, зона при разборе не допускается.
type NaiveTime struct {
	time.Time
}

// NewNaiveTime отбрасывает зону: берутся «настенные» часы t.
func NewNaiveTime(t time.Time) NaiveTime {
	return NaiveTime{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// ParseNaiveTime разбирает строку в формате NaiveTimeLayout.
func ParseNaiveTime(s string) (NaiveTime, error) {
	t, err := time.Parse(NaiveTimeLayout, s)
	if err != nil {
		return NaiveTime{}, fmt.Errorf("parse naive time %q: %w", s, err)
	}
	return NaiveTime{Time: t}, nil
}

func (n NaiveTime) String() string { return n.Time.Format(NaiveTimeLayout) }

func (n NaiveTime) MarshalJSON() ([]byte, error) {
	if n.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + n.String() + `"`), nil
}

func (n *NaiveTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = NaiveTime{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("naive time must be a JSON string, got %s", data)
	}
	parsed, err := ParseNaiveTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
