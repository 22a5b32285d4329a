package core

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks on spaces", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"collapses whitespace", "  a   b  ", 10, []string{"a b"}},
		{"empty", "", 10, nil},
		{"zero width", "abc", 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapText(tc.text, tc.width); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("WrapText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
			}
		})
	}
}
