package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

func newHFTestProvider(t *testing.T, handler http.HandlerFunc) (*HuggingFaceProvider, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	logger := zap.NewNop()
	provider := NewHuggingFaceProvider(ts.URL, "test-model", "test-key", 512, logger, utils.NewTextProcessor(logger))
	return provider, ts
}

func TestHuggingFaceAnalyzeSentiment(t *testing.T) {
	provider, _ := newHFTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/test-model") {
			t.Errorf("path = %s, want .../test-model", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}

		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Inputs == "" {
			t.Error("empty inputs in inference request")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[{"label":"negative","score":0.91},{"label":"neutral","score":0.06},{"label":"positive","score":0.03}]]`))
	})

	signal, err := provider.AnalyzeSentiment(context.Background(), "o sistema está fora do ar")
	if err != nil {
		t.Fatalf("AnalyzeSentiment failed: %v", err)
	}
	if signal.Category != core.CategoryProductive {
		t.Fatalf("category = %q, want %q", signal.Category, core.CategoryProductive)
	}
	if signal.Confidence != 0.91 {
		t.Fatalf("confidence = %v, want 0.91", signal.Confidence)
	}
	if signal.ModelUsed != "test-model" {
		t.Fatalf("model = %q, want test-model", signal.ModelUsed)
	}
}

func TestHuggingFaceFlatResponseShape(t *testing.T) {
	provider, _ := newHFTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"label":"positive","score":0.8},{"label":"negative","score":0.2}]`))
	})

	signal, err := provider.AnalyzeSentiment(context.Background(), "muito obrigado pela ajuda")
	if err != nil {
		t.Fatalf("AnalyzeSentiment failed: %v", err)
	}
	if signal.Category != core.CategoryUnproductive {
		t.Fatalf("category = %q, want %q", signal.Category, core.CategoryUnproductive)
	}
}

func TestHuggingFaceErrorStatus(t *testing.T) {
	provider, _ := newHFTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	if _, err := provider.AnalyzeSentiment(context.Background(), "qualquer texto"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestHuggingFaceMalformedResponse(t *testing.T) {
	provider, _ := newHFTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error":"unexpected shape"}`))
	})

	if _, err := provider.AnalyzeSentiment(context.Background(), "qualquer texto"); err == nil {
		t.Fatal("expected error on unexpected response shape")
	}
}

func TestTopLabelPicksHighestScore(t *testing.T) {
	top, err := topLabel([]byte(`[[{"label":"neutral","score":0.4},{"label":"negative","score":0.5},{"label":"positive","score":0.1}]]`))
	if err != nil {
		t.Fatalf("topLabel failed: %v", err)
	}
	if top.Label != "negative" || top.Score != 0.5 {
		t.Fatalf("top = %+v, want negative/0.5", top)
	}
}

func TestParseSentimentResponse(t *testing.T) {
	parsed, err := parseSentimentResponse(`{"label":"positive","score":0.77}`)
	if err != nil {
		t.Fatalf("direct JSON failed: %v", err)
	}
	if parsed.Label != "positive" || parsed.Score != 0.77 {
		t.Fatalf("parsed = %+v", parsed)
	}

	parsed, err = parseSentimentResponse("Here you go:\n```json\n{\"label\":\"negative\",\"score\":0.6}\n```")
	if err != nil {
		t.Fatalf("wrapped JSON failed: %v", err)
	}
	if parsed.Label != "negative" {
		t.Fatalf("parsed = %+v", parsed)
	}

	if _, err := parseSentimentResponse("sorry, I cannot help"); err == nil {
		t.Fatal("expected error for prose-only response")
	}
}
