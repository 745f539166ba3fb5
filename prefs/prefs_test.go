package prefs

import (
	"reflect"
	"testing"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"electronics", []string{"electronics"}},
		{" Electronics , BOOKS ", []string{"books", "electronics"}},
		{"home,,home, ,", []string{"home"}},
		{",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseCSV(tt.in).Sorted(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCSV(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 6},
		{"abc", 6},
		{"3.5", 6},
		{"0", 1},
		{"-4", 1},
		{"1", 1},
		{" 7 ", 7},
		{"12", 12},
		{"100", 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseCount(tt.in); got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCountOr(t *testing.T) {
	if got := ParseCountOr("", 3); got != 3 {
		t.Errorf("ParseCountOr(\"\", 3) = %d", got)
	}
	if got := ParseCountOr("x", 40); got != 12 {
		t.Errorf("ParseCountOr(\"x\", 40) = %d", got)
	}
	if got := ParseCountOr("2", 9); got != 2 {
		t.Errorf("ParseCountOr(\"2\", 9) = %d", got)
	}
}

func TestConfirmed(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"y", true},
		{" YES ", true},
		{"n", false},
		{"no", false},
		{"sure", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Confirmed(tt.in); got != tt.want {
				t.Errorf("Confirmed(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
