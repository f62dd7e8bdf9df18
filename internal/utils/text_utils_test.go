package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func TestTruncateChars(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	tests := []struct {
		name     string
		text     string
		maxChars int
		want     string
	}{
		{"short text untouched", "olá mundo", 100, "olá mundo"},
		{"exact length untouched", "abcde", 5, "abcde"},
		{"ascii truncation", "abcdef", 3, "abc"},
		{"accented truncation keeps runes whole", "ééééé", 3, "ééé"},
		{"zero max disables truncation", strings.Repeat("x", 50), 0, strings.Repeat("x", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tp.TruncateChars(tt.text, tt.maxChars)
			if got != tt.want {
				t.Fatalf("TruncateChars(%q, %d) = %q, want %q", tt.text, tt.maxChars, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncation produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	valid := "texto com acentuação"
	if got := tp.SanitizeUTF8(valid); got != valid {
		t.Fatalf("valid string altered: %q", got)
	}

	broken := "ol" + string([]byte{0xE1}) + " mundo"
	got := tp.SanitizeUTF8(broken)
	if !utf8.ValidString(got) {
		t.Fatalf("sanitized string still invalid: %q", got)
	}
	if !strings.Contains(got, "ol") || !strings.Contains(got, "mundo") {
		t.Fatalf("sanitization dropped valid content: %q", got)
	}
}

func TestProcessText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	broken := strings.Repeat("a", 10) + string([]byte{0xFF}) + strings.Repeat("b", 10)
	got := tp.ProcessText(broken, 5)
	if !utf8.ValidString(got) {
		t.Fatalf("processed text invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) > 5 {
		t.Fatalf("processed text too long: %q", got)
	}
}
