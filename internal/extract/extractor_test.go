package extract

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestExtractTextPlainUTF8(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	text, err := e.ExtractText([]byte("Olá, preciso de suporte urgente."), "email.txt")
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Olá, preciso de suporte urgente." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextLatin1Fallback(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	// "olá" in Windows-1252/Latin-1: 0xE1 is not valid UTF-8 on its own.
	content := []byte{'o', 'l', 0xE1}
	text, err := e.ExtractText(content, "legado.TXT")
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "olá" {
		t.Fatalf("decoded text = %q, want %q", text, "olá")
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	_, err := e.ExtractText([]byte("whatever"), "email.docx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), "email.docx") {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestExtractTextBrokenPDF(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	if _, err := e.ExtractText([]byte("not really a pdf"), "report.pdf"); err == nil {
		t.Fatal("expected error for invalid PDF content")
	}
}

func TestExtractTextCaseInsensitiveExtension(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	text, err := e.ExtractText([]byte("conteúdo"), "EMAIL.TXT")
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "conteúdo" {
		t.Fatalf("unexpected text: %q", text)
	}
}
