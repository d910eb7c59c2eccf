package weight

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"72.5", 72.5},
		{"0.1", 0.1},
		{"300", 300},
		{"85", 85},
	}

	for _, tc := range cases {
		got, err := Parse(tc.raw)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestParse_NotNumeric(t *testing.T) {
	for _, raw := range []string{"", "abc", "72,5", "12kg", "NaN", "nan", "-NaN"} {
		_, err := Parse(raw)
		if !errors.Is(err, ErrNotNumeric) {
			t.Errorf("Parse(%q): expected ErrNotNumeric, got %v", raw, err)
		}
	}
}

func TestParse_NotPositive(t *testing.T) {
	for _, raw := range []string{"0", "-1", "-72.5", "-Inf"} {
		_, err := Parse(raw)
		if !errors.Is(err, ErrNotPositive) {
			t.Errorf("Parse(%q): expected ErrNotPositive, got %v", raw, err)
		}
	}
}

func TestParse_TooHigh(t *testing.T) {
	for _, raw := range []string{"300.1", "+Inf"} {
		_, err := Parse(raw)
		if !errors.Is(err, ErrTooHigh) {
			t.Errorf("Parse(%q): expected ErrTooHigh, got %v", raw, err)
		}
	}
}

// The error messages are shown verbatim in the weight form.
func TestParse_UserFacingMessages(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"abc", "Le poids doit être un nombre valide"},
		{"-5", "Le poids doit être supérieur à 0"},
		{"450", "Le poids semble invalide (> 300kg)"},
	}

	for _, tc := range cases {
		_, err := Parse(tc.raw)
		if err == nil || err.Error() != tc.want {
			t.Errorf("Parse(%q): expected message %q, got %v", tc.raw, tc.want, err)
		}
	}
}
