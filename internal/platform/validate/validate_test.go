package validate

import (
	"encoding/json"
	"testing"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"first.last@sub.domain.org", true},
		{"x@y.z", true},
		{"", false},
		{"plainaddress", false},
		{"@no-local.com", false},
		{"no-domain@", false},
		{"no-dot@domain", false},
		{"two@@signs.com", false},
		{"spa ce@mail.com", false},
		{"a@b .com", false},
	}

	for _, tc := range cases {
		if got := Email(tc.in); got != tc.want {
			t.Errorf("Email(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestToInt(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"json number", json.Number("42"), 42, true},
		{"json negative", json.Number("-7"), -7, true},
		{"json float", json.Number("3.5"), 0, false},
		{"json float with zero decimals", json.Number("3.0"), 0, false},
		{"numeric string", "123", 123, true},
		{"padded string", " 123 ", 123, true},
		{"empty string", "", 0, false},
		{"blank string", "   ", 0, false},
		{"text", "abc", 0, false},
		{"float string", "1.5", 0, false},
		{"float64 integral", float64(9), 9, true},
		{"float64 fractional", 9.25, 0, false},
		{"native int", 5, 5, true},
		{"native int64", int64(6), 6, true},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToInt(tc.in)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ToInt(%v) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestCSVValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil is empty", nil, ""},
		{"plain string", "hello", "hello"},
		{"empty string", "", ""},
		{"int", int64(42), "42"},
		{"comma", "a,b", `"a,b"`},
		{"quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
		{"carriage return", "a\rb", "\"a\rb\""},
		{"quote and comma", `"x",y`, `"""x"",y"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CSVValue(tc.in); got != tc.want {
				t.Fatalf("CSVValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
