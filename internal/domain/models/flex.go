package models

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
)

// jsonInteger matches the canonical JSON integer form: no sign prefix, no
// leading zeros.
var jsonInteger = regexp.MustCompile(`^(0|-?[1-9][0-9]*)$`)

// FlexString accepts both JSON strings and numbers. Backend ids and a few
// form fields arrive in either shape depending on which service wrote them.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// MarshalJSON writes integers back as numbers so PUT payloads keep the
// backend's original type.
func (f FlexString) MarshalJSON() ([]byte, error) {
	s := string(f)
	if jsonInteger.MatchString(s) {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return []byte(s), nil
		}
	}
	return json.Marshal(s)
}

func (f FlexString) String() string { return string(f) }
