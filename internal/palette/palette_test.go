package palette

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		token string
		want  lipgloss.Color
	}{
		{"blue-600", "#2563eb"},
		{"bg-cyan-500", "#06b6d4"},
		{"  Orange-600 ", "#ea580c"},
		{"yellow-400", "#facc15"},
		{"pink-300", Fallback},
		{"", Fallback},
		{"bg-", Fallback},
	}
	for _, tt := range tests {
		if got := Resolve(tt.token); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestLookupReportsGaps(t *testing.T) {
	if _, ok := Lookup("purple-600"); !ok {
		t.Fatal("purple-600 should be mapped")
	}
	if c, ok := Lookup("mystery"); ok || c != "" {
		t.Fatalf("Lookup(mystery) = %q, %v", c, ok)
	}
}

func TestTokensAreMappedAndSorted(t *testing.T) {
	toks := Tokens()
	if len(toks) != 7 {
		t.Fatalf("len(Tokens()) = %d, want 7", len(toks))
	}
	for i, tok := range toks {
		if Resolve(tok) == Fallback {
			t.Errorf("token %q resolves to fallback", tok)
		}
		if i > 0 && toks[i-1] >= tok {
			t.Errorf("tokens not sorted at %d", i)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex("green-500"); got != "#22c55e" {
		t.Fatalf("Hex = %q", got)
	}
}
