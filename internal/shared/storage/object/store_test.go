package object

import (
	"errors"
	"strings"
	"testing"
)

func TestDocumentKey(t *testing.T) {
	key := DocumentKey("guest:abc", "resume", "doc-1")
	parts := strings.Split(key, "/")
	if len(parts) != 4 {
		t.Fatalf("unexpected key %q", key)
	}
	if strings.Contains(key, "guest") {
		t.Fatalf("key leaks the user id: %q", key)
	}
	if parts[2] != "resume" || parts[3] != "doc-1.pdf" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
		err  bool
	}{
		{key: "a/b.pdf", want: "a/b.pdf"},
		{key: "a//b/../c.pdf", want: "a/c.pdf"},
		{key: `a\b.pdf`, want: "a/b.pdf"},
		{key: "../etc/passwd", err: true},
		{key: "/etc/passwd", err: true},
		{key: "..", err: true},
		{key: "  ", err: true},
	}
	for _, tt := range tests {
		got, err := CleanKey(tt.key)
		if tt.err {
			if !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("CleanKey(%q) expected ErrInvalidKey, got %v", tt.key, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("CleanKey(%q) = %q, %v; want %q", tt.key, got, err, tt.want)
		}
	}
}
