package xword

import (
	"sort"
	"testing"
)

// TestRoundTrip is property 1 and scenario S1: every admitted word matches
// itself, and matches the all-wildcard pattern, as a singleton.
func TestRoundTrip(t *testing.T) {
	s := newTestSolver(t, 4)
	dict, err := s.LoadDictionary([]string{"a"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}

	cases := []struct {
		pattern string
		want    []string
	}{
		{"a", []string{"a"}},
		{"*", []string{"a"}},
		{"b", nil},
	}
	for _, c := range cases {
		got, err := dict.Matches(c.pattern)
		if err != nil {
			t.Fatalf("Matches(%q): %s", c.pattern, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("Matches(%q) = %v, want %v", c.pattern, got, c.want)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("Matches(%q) = %v, want %v", c.pattern, got, c.want)
			}
		}
	}
}

// TestPatternSoundnessAndCompleteness is properties 4 and 5 and scenario S2.
func TestPatternSoundnessAndCompleteness(t *testing.T) {
	s := newTestSolver(t, 4)
	dict, err := s.LoadDictionary([]string{"cat", "car", "bat", "bar"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}

	cases := []struct {
		pattern string
		want    []string
	}{
		{"ca*", []string{"car", "cat"}},
		{"*a*", []string{"bar", "bat", "car", "cat"}},
	}
	for _, c := range cases {
		got, err := dict.Matches(c.pattern)
		if err != nil {
			t.Fatalf("Matches(%q): %s", c.pattern, err)
		}
		sort.Strings(got)

		// Soundness: every match agrees with the pattern at every non-wildcard
		// position and has the same length.
		for _, w := range got {
			if len(w) != len(c.pattern) {
				t.Fatalf("Matches(%q) returned %q with wrong length", c.pattern, w)
			}
			for i := 0; i < len(c.pattern); i++ {
				if c.pattern[i] != Wildcard && c.pattern[i] != w[i] {
					t.Fatalf("Matches(%q) returned %q, which disagrees at position %d", c.pattern, w, i)
				}
			}
		}

		// Completeness: the match set is exactly what we expect.
		if len(got) != len(c.want) {
			t.Fatalf("Matches(%q) = %v, want %v", c.pattern, got, c.want)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("Matches(%q) = %v, want %v", c.pattern, got, c.want)
			}
		}
	}
}
