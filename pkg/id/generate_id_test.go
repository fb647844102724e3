package id

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
	if !Valid(got) {
		t.Fatalf("Valid rejects generated id %q", got)
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	valid := []string{
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
		"3F9A6A1B-3D54-4FBE-8B3A-6B3E8D6B2C88", // case-insensitive
		strings.Repeat("a", 32),
		" 3f9a6a1b3d544fbe8b3a6b3e8d6b2c88 ",
	}
	for _, s := range valid {
		if !Valid(s) {
			t.Fatalf("Valid should accept %q", s)
		}
	}
	invalid := []string{
		"",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",      // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c880",    // 33 chars
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",     // non-hex
		"3f9a6a1b-3d54-9fbe-8b3a-6b3e8d6b2c88", // version 9
		"upload-2024-01-10",
	}
	for _, s := range invalid {
		if Valid(s) {
			t.Fatalf("Valid should reject %q", s)
		}
	}
}
