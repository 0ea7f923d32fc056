package utils

import (
	"testing"
)

func TestLocalPart(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"a@x.com", "a"},
		{"john.doe@example.com", "john.doe"},
		{"first@second@third", "first"},
		{"@x.com", ""},
		{"noatsign", "noatsign"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual := LocalPart(tc.input)
			if actual != tc.expected {
				t.Errorf("LocalPart(%q) = %q; want %q", tc.input, actual, tc.expected)
			}
		})
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(32)
	if len(s) != 32 {
		t.Errorf("GenerateRandomString(32) returned %d characters", len(s))
	}
}
