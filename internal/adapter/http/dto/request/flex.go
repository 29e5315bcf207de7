package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. Anything else decodes
// to 0; fractional values are truncated.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	v := parseLooseNumber(b)
	if math.IsNaN(v) || math.Abs(v) > math.MaxInt32 {
		*f = 0
		return nil
	}
	*f = FlexInt(int(v))
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// FlexString accepts a JSON string or number and keeps its text.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

// parseLooseNumber decodes a number or numeric string, returning NaN for
// anything else, including an absent value.
func parseLooseNumber(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return math.NaN()
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return math.NaN()
}
