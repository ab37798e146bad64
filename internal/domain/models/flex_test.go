package models

import (
	"encoding/json"
	"testing"
)

func TestFlexStringDecode(t *testing.T) {
	cases := []struct {
		in   string
		want FlexString
	}{
		{`{"driver_id":12}`, "12"},
		{`{"driver_id":"abc"}`, "abc"},
		{`{"driver_id":null}`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var s Session
		if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if s.DriverID != tc.want {
			t.Fatalf("%s: got %q want %q", tc.in, s.DriverID, tc.want)
		}
	}
}

func TestAssignmentWithSignedIDMarshals(t *testing.T) {
	b, err := json.Marshal(Assignment{DriverID: "+5"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("output is not valid JSON: %s", b)
	}
}

func TestFlexStringEncodeKeepsNumbers(t *testing.T) {
	cases := map[FlexString]string{
		"12":    `12`,
		"0":     `0`,
		"007":   `"007"`,
		"64f0a": `"64f0a"`,
		"":      `""`,
		"-7":    `-7`,
		"+5":    `"+5"`,
		"-05":   `"-05"`,
		"-0":    `"-0"`,
	}
	for in, want := range cases {
		b, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal %q: %v", in, err)
		}
		if string(b) != want {
			t.Fatalf("marshal %q = %s, want %s", in, b, want)
		}
	}
}
