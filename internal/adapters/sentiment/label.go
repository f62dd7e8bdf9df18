package sentiment

import (
	"strings"

	"github.com/mikey/email-triage/internal/core"
)

// MapLabel maps a 3-class sentiment label onto the triage category space.
// Negative sentiment usually signals a problem needing action; positive
// sentiment tends to be praise or thanks; neutral abstains. Both
// human-readable labels ("negative") and numeric-coded schemes ("LABEL_0")
// are tolerated.
func MapLabel(label string, score float64, modelUsed string) *core.SentimentSignal {
	signal := &core.SentimentSignal{
		Confidence: score,
		Label:      label,
		ModelUsed:  modelUsed,
	}

	lbl := strings.ToLower(label)
	switch {
	case strings.Contains(lbl, "neg") || lbl == "label_0":
		signal.Category = core.CategoryProductive
	case strings.Contains(lbl, "pos") || lbl == "label_2":
		signal.Category = core.CategoryUnproductive
	}
	// Anything else (neutral, label_1, unknown schemes) stays an abstention.

	return signal
}

// extractJSON pulls the first {...} object out of a model response that may
// wrap its JSON in prose or markdown fences.
func extractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
