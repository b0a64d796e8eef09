package mailapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a time reported by the API. It accepts any ISO 8601 form the
// API emits, including date-only values, and keeps the original text in Raw.
// Time is zero when Raw could not be parsed.
type Timestamp struct {
	time.Time
	Raw string
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = Timestamp{}

	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Numeric timestamps are milliseconds since the epoch
		t.Raw = string(data)
		if ms, err := strconv.ParseInt(t.Raw, 10, 64); err == nil {
			t.Time = time.UnixMilli(ms).UTC()
		}
		return nil
	}

	t.Raw = s
	s = strings.TrimSpace(s)

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			break
		}
	}

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		if t.Raw == "" {
			return []byte("null"), nil
		}
		return json.Marshal(t.Raw)
	}
	return t.Time.MarshalJSON()
}

// Number is a numeric value reported by the API. Non-numeric values such as
// "unlimited" leave Value at 0 with Valid false; Raw always holds the
// original JSON text.
type Number struct {
	Value float64
	Valid bool
	Raw   string
}

// Int returns Value truncated to an int.
func (n Number) Int() int {
	return int(n.Value)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = Number{Raw: string(data)}

	if string(data) == "null" {
		return nil
	}

	text := string(data)

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		text = strings.TrimSpace(s)
	}

	if v, err := strconv.ParseFloat(text, 64); err == nil {
		n.Value = v
		n.Valid = true
	}

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n.Valid {
		return json.Marshal(n.Value)
	}
	if n.Raw == "" {
		return []byte("null"), nil
	}
	return []byte(n.Raw), nil
}
