package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedFormat is returned for file types other than .txt/.pdf
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoTextContent is returned when no text is recoverable from the file
	ErrNoTextContent = errors.New("no text content could be extracted")
)

// Extractor turns uploaded file bytes into plain text. Extraction failures
// are input errors: the classification core never sees them.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates a new file text extractor
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractText produces plain text from raw file content based on the
// filename extension.
func (e *Extractor) ExtractText(content []byte, filename string) (string, error) {
	name := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(name, ".pdf"):
		return e.extractPDF(content, filename)
	case strings.HasSuffix(name, ".txt"):
		return e.extractPlainText(content, filename)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func (e *Extractor) extractPDF(content []byte, filename string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", filename, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text layer from %s: %w", filename, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", fmt.Errorf("failed to read PDF text layer from %s: %w", filename, err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		// Scanned PDFs have pages but no embedded text.
		return "", fmt.Errorf("%w: %s has no embedded text layer", ErrNoTextContent, filename)
	}

	e.logger.Debug("extracted text from PDF",
		zap.String("filename", filename),
		zap.Int("pages", reader.NumPage()),
		zap.Int("chars", len(text)))

	return text, nil
}

// extractPlainText decodes a .txt upload, assuming UTF-8 first and falling
// back to the legacy Windows/Latin encodings common in Brazilian corporate
// mail exports.
func (e *Extractor) extractPlainText(content []byte, filename string) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}

	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(content)
		if err != nil {
			continue
		}
		e.logger.Debug("decoded text file with fallback encoding",
			zap.String("filename", filename),
			zap.String("encoding", cm.String()))
		return string(decoded), nil
	}

	return "", fmt.Errorf("%w: %s could not be decoded in any supported encoding", ErrNoTextContent, filename)
}
