package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexInt decodes from a JSON number or a numeric string. Browser forms
// post select values as strings. null and "" decode to 0.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		s, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("invalid numeric string %s: %w", raw, err)
		}
		raw = bytes.TrimSpace([]byte(s))
		if len(raw) == 0 {
			*f = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		v, ferr := strconv.ParseFloat(string(raw), 64)
		if ferr != nil || v != float64(int64(v)) {
			return fmt.Errorf("invalid integer %s", raw)
		}
		n = int64(v)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int64() int64 { return int64(f) }

func (f FlexInt) Int() int { return int(f) }
