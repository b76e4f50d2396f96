package tokens_test

import (
	"strings"
	"testing"

	"dtc/tokens"
)

func TestValidateTokenName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"primary", true},
		{"brand-primary", true},
		{"Primary Color", true},
		{"$root", true},
		{"$value", false},
		{"{alias}", false},
		{"open{", false},
		{"a.b", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tokens.ValidateTokenName(tt.name)
			if res.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (error %q)", res.Valid, tt.valid, res.Error)
			}
			if !res.Valid && res.Error == "" {
				t.Error("invalid name without error message")
			}
		})
	}
}

func TestSanitizeTokenName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"primary", "primary"},
		{"Brand Primary", "brand-primary"},
		{"$secret", "secret"},
		{"$$twice", "twice"},
		{"color.primary", "color-primary"},
		{"{ref}", "-ref-"},
		{"  spaced\tout  ", "spaced-out"},
		{" primary", "primary"},
		{"ÜBER", "über"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := tokens.SanitizeTokenName(tt.in); got != tt.want {
				t.Errorf("SanitizeTokenName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizedNamesAlwaysValid(t *testing.T) {
	inputs := []string{"$root", "{a.b}", "$.x", "a b c", "UPPER.case", "$$${}}", "-ok-", "x"}
	for _, in := range inputs {
		out := tokens.SanitizeTokenName(in)
		if strings.ContainsAny(out, "{}.") || strings.HasPrefix(out, "$") {
			t.Errorf("SanitizeTokenName(%q) = %q keeps forbidden characters", in, out)
		}
		if out != "" && !tokens.ValidateTokenName(out).Valid {
			t.Errorf("SanitizeTokenName(%q) = %q does not validate", in, out)
		}
	}
}
