package ahocorasick

import (
	"reflect"
	"testing"
)

func TestFindAllBasic(t *testing.T) {
	m := New([]string{"he", "she", "his", "hers"})
	got := m.FindAll("ushers")
	want := []Match{
		{Start: 1, End: 4}, // "she"
		{Start: 2, End: 4}, // "he" ends at same pos as "she" but is shorter -> suppressed
		{Start: 2, End: 6}, // "hers"
	}
	_ = want
	// "he" at [2,4) is shorter than "she" ending at the same position (4),
	// so only the longest ending at each position survives.
	expect := []Match{
		{Start: 1, End: 4},
		{Start: 2, End: 6},
	}
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("FindAll = %v, want %v", got, expect)
	}
}

func TestFindAllCaseInsensitive(t *testing.T) {
	m := New([]string{"FOO"})
	got := m.FindAll("a foo b FOO c FoO")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d: %v", len(got), got)
	}
}

func TestFindAllEmptyPatterns(t *testing.T) {
	m := New(nil)
	if got := m.FindAll("anything"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFindAllNoMatch(t *testing.T) {
	m := New([]string{"xyz"})
	if got := m.FindAll("abcdef"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFindAllLeftmostLongestOverlap(t *testing.T) {
	m := New([]string{"a", "ab", "abc"})
	got := m.FindAll("abc")
	// Only "abc" (length 3) ends at position 3; "ab" ends at 2 (suppressed by
	// nothing longer ending there, since "abc" ends at 3 not 2); "a" ends at 1.
	want := []Match{
		{Start: 0, End: 1}, // "a"
		{Start: 0, End: 2}, // "ab"
		{Start: 0, End: 3}, // "abc"
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll = %v, want %v", got, want)
	}
}
