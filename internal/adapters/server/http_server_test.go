package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/extract"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*HTTPServer, http.Handler) {
	t.Helper()
	logger := zap.NewNop()
	service := core.NewTriageService(
		nil, // keyword-only
		nil,
		nil,
		core.NewStats(),
		logger,
		false,
		0,
		time.Second,
		false,
	)
	s := NewHTTPServer(service, extract.NewExtractor(logger), logger, "127.0.0.1:0", 1<<20, "")
	return s, s.routes()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if raw, ok := body.([]byte); ok {
		reader = bytes.NewReader(raw)
	} else {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("status field = %q, want healthy", resp.Status)
	}
	if resp.ModelsLoaded {
		t.Fatal("models_loaded should be false without a sentiment provider")
	}
}

func TestClassifyTextGreeting(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/classify-text",
		classifyTextRequest{Text: "Muito obrigado! Boas festas!"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp classificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Category != string(core.CategoryUnproductive) {
		t.Fatalf("category = %q, want %q", resp.Category, core.CategoryUnproductive)
	}
	if resp.Confidence != 0.95 {
		t.Fatalf("confidence = %v, want 0.95", resp.Confidence)
	}
	if resp.SuggestedResponse == "" || resp.ProcessingID == "" {
		t.Fatalf("incomplete response: %+v", resp)
	}
}

func TestClassifyTextProductive(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/classify-text",
		classifyTextRequest{Text: "estamos com um erro no sistema e precisamos de suporte urgente"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp classificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Category != string(core.CategoryProductive) {
		t.Fatalf("category = %q, want %q", resp.Category, core.CategoryProductive)
	}
	if resp.Confidence < 0.85 {
		t.Fatalf("confidence = %v, want >= 0.85 for a strong keyword signal", resp.Confidence)
	}
}

func TestClassifyTextRejectsEmpty(t *testing.T) {
	_, handler := newTestServer(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		rec := doJSON(t, handler, http.MethodPost, "/classify-text", classifyTextRequest{Text: text})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status for %q = %d, want 400", text, rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error response: %v", err)
		}
		if resp.Detail == "" {
			t.Fatal("error response missing detail")
		}
	}
}

func TestClassifyTextRejectsInvalidJSON(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/classify-text", []byte("{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestClassifyFileTxt(t *testing.T) {
	_, handler := newTestServer(t)

	body, contentType := multipartUpload(t, "chamado.txt", []byte("qual o status do chamado sobre o erro?"))
	req := httptest.NewRequest(http.MethodPost, "/classify-file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp classificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Category != string(core.CategoryProductive) {
		t.Fatalf("category = %q, want %q", resp.Category, core.CategoryProductive)
	}
	if resp.Intent != "status" {
		t.Fatalf("intent = %q, want status", resp.Intent)
	}
}

func TestClassifyFileUnsupportedFormat(t *testing.T) {
	_, handler := newTestServer(t)

	body, contentType := multipartUpload(t, "planilha.xlsx", []byte("binary-ish"))
	req := httptest.NewRequest(http.MethodPost, "/classify-file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestClassifyFileMissingField(t *testing.T) {
	_, handler := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("other", "value")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/classify-file", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestClassifyFileTooLarge(t *testing.T) {
	logger := zap.NewNop()
	service := core.NewTriageService(nil, nil, nil, core.NewStats(), logger, false, 0, time.Second, false)
	s := NewHTTPServer(service, extract.NewExtractor(logger), logger, "127.0.0.1:0", 64, "")
	handler := s.routes()

	body, contentType := multipartUpload(t, "grande.txt", bytes.Repeat([]byte("a"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/classify-file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code < http.StatusBadRequest {
		t.Fatalf("status = %d, want a client error", rec.Code)
	}
}

func TestAnalyzeDispatch(t *testing.T) {
	_, handler := newTestServer(t)

	// JSON body goes through the text path.
	rec := doJSON(t, handler, http.MethodPost, "/analyze", classifyTextRequest{Text: "preciso de ajuda com o login"})
	if rec.Code != http.StatusOK {
		t.Fatalf("json analyze status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// Multipart body goes through the file path.
	body, contentType := multipartUpload(t, "email.txt", []byte("segue em anexo o contrato"))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("multipart analyze status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestStatsEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/classify-text",
		classifyTextRequest{Text: "Muito obrigado! Boas festas!"})
	if rec.Code != http.StatusOK {
		t.Fatalf("classify status = %d, want 200", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	statsRec := httptest.NewRecorder()
	handler.ServeHTTP(statsRec, req)

	if statsRec.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want 200", statsRec.Code)
	}

	var snap core.StatsSnapshot
	if err := json.Unmarshal(statsRec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid stats response: %v", err)
	}
	if snap.TotalClassifications != 1 {
		t.Fatalf("total = %d, want 1", snap.TotalClassifications)
	}
	if snap.UnproductiveCount != 1 {
		t.Fatalf("unproductive = %d, want 1", snap.UnproductiveCount)
	}
	if snap.AverageConfidence != 0.95 {
		t.Fatalf("average = %v, want 0.95", snap.AverageConfidence)
	}
}

func TestProcessTextRejectsEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	if _, err := s.ProcessText(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank text")
	}
}
