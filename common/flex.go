package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString is a string field the API sometimes returns as a number or
// null. Numbers keep their JSON text; null becomes "".
type FlexString string

// UnmarshalJSON accepts a string, a number or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("FlexString: unexpected value %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// Float64 parses the value, ignoring a trailing "%".
func (f FlexString) Float64() (float64, error) {
	s := string(f)
	if s == "" {
		return 0, nil
	}
	if s[len(s)-1] == '%' {
		s = s[:len(s)-1]
	}
	return strconv.ParseFloat(s, 64)
}

// IsPercent reports whether the value is a percentage such as "2%".
func (f FlexString) IsPercent() bool {
	return len(f) > 0 && f[len(f)-1] == '%'
}

func (f FlexString) String() string { return string(f) }
