package trie

import "testing"

func TestFindLongestPrefix(t *testing.T) {
	tr := New()
	tr.Insert("sentabr", "sentyabr")
	tr.Insert("sen", "shortsen")
	tr.Insert("oktabr", "oktyabr")

	tests := []struct {
		name     string
		input    string
		wantLen  int
		wantVal  string
		wantFind bool
	}{
		{"exact longest", "sentabr", 7, "sentyabr", true},
		{"case folded", "SENTABR", 7, "sentyabr", true},
		{"mixed case", "Sentabr kuni", 7, "sentyabr", true},
		{"shorter prefix only", "sentX", 3, "shortsen", true},
		{"no match", "xyz", 0, "", false},
		{"empty", "", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := tr.FindLongestPrefix(tt.input)
			if ok != tt.wantFind {
				t.Fatalf("FindLongestPrefix(%q) ok = %v, want %v", tt.input, ok, tt.wantFind)
			}
			if !ok {
				return
			}
			if m.ByteLen != tt.wantLen || m.Value != tt.wantVal {
				t.Errorf("FindLongestPrefix(%q) = {%d,%q}, want {%d,%q}",
					tt.input, m.ByteLen, m.Value, tt.wantLen, tt.wantVal)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	tr := New()
	if !tr.IsEmpty() {
		t.Fatal("new trie should be empty")
	}
	tr.Insert("a", "b")
	if tr.IsEmpty() {
		t.Fatal("trie with an entry should not be empty")
	}
}

func TestManyChildrenTriggersBinarySearch(t *testing.T) {
	tr := New()
	// Insert enough single-rune keys off the root to cross smallNodeThreshold.
	letters := "abcdefghijklmnopqrstuvwxyz0123456789"
	for i, r := range letters {
		tr.Insert(string(r), string(rune('A'+i%26)))
	}
	for _, r := range letters {
		m, ok := tr.FindLongestPrefix(string(r))
		if !ok || m.ByteLen != 1 {
			t.Errorf("FindLongestPrefix(%q) ok=%v len=%d, want match of length 1", string(r), ok, m.ByteLen)
		}
	}
	if _, ok := tr.FindLongestPrefix("!"); ok {
		t.Error("unexpected match for unknown rune")
	}
}

func TestUnicodeKeys(t *testing.T) {
	tr := New()
	tr.Insert("маъно", "value")
	m, ok := tr.FindLongestPrefix("Маъно билан")
	if !ok || m.Value != "value" {
		t.Fatalf("expected match for Cyrillic key, got ok=%v val=%q", ok, m.Value)
	}
	if m.ByteLen != len("Маъно") {
		t.Errorf("ByteLen = %d, want %d", m.ByteLen, len("Маъно"))
	}
}
