package validation

import (
	"testing"
)

func TestContainsProfanity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "have a great summer", false},
		{"exact match", "ngu", true},
		{"embedded substring", "bạn thật là nguời tốt", true},
		{"uppercase", "NGU", true},
		{"mixed case embedded", "so nGu of you", true},
		{"english word", "well fuck", true},
		{"english embedded", "what the SHIThead", true},
		{"empty", "", false},
		{"substring inside name", "nguyen", true}, // naive matching, by contract
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsProfanity(tt.text); got != tt.want {
				t.Errorf("ContainsProfanity(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRequireNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"all set", []string{"a", "b"}, true},
		{"one empty", []string{"a", ""}, false},
		{"whitespace only", []string{"   "}, false},
		{"no values", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequireNonEmpty(tt.values...); got != tt.want {
				t.Errorf("RequireNonEmpty(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
