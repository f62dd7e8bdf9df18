package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/extract"
	"go.uber.org/zap"
)

// HTTPServer is the HTTP frontend for the triage service
type HTTPServer struct {
	service        *core.TriageService
	extractor      *extract.Extractor
	logger         *zap.Logger
	listenAddr     string
	maxUploadBytes int64
	staticDir      string
	server         *http.Server
}

// NewHTTPServer creates a new HTTP frontend
func NewHTTPServer(
	service *core.TriageService,
	extractor *extract.Extractor,
	logger *zap.Logger,
	listenAddr string,
	maxUploadBytes int64,
	staticDir string,
) *HTTPServer {
	return &HTTPServer{
		service:        service,
		extractor:      extractor,
		logger:         logger,
		listenAddr:     listenAddr,
		maxUploadBytes: maxUploadBytes,
		staticDir:      staticDir,
	}
}

type classifyTextRequest struct {
	Text string `json:"text"`
}

type classificationResponse struct {
	Category          string  `json:"category"`
	Confidence        float64 `json:"confidence"`
	OriginalText      string  `json:"original_text"`
	SuggestedResponse string  `json:"suggested_response"`
	Intent            string  `json:"intent"`
	ProcessingID      string  `json:"processing_id"`
}

type healthResponse struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *HTTPServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/classify-text", s.handleClassifyText)
	r.Post("/classify-file", s.handleClassifyFile)
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/stats", s.handleStats)

	// Serve the bundled UI only when the directory exists; deployments
	// without it run API-only.
	if info, err := os.Stat(s.staticDir); err == nil && info.IsDir() {
		fileServer := http.StripPrefix("/ui", http.FileServer(http.Dir(s.staticDir)))
		r.Get("/ui/*", func(w http.ResponseWriter, req *http.Request) {
			fileServer.ServeHTTP(w, req)
		})
		s.logger.Info("serving static UI", zap.String("dir", s.staticDir))
	}

	return r
}

// Start starts the HTTP frontend
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("HTTP frontend starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop stops the HTTP frontend
func (s *HTTPServer) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ProcessText classifies one flat email text
func (s *HTTPServer) ProcessText(ctx context.Context, text string) (*core.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty text")
	}
	return s.service.Classify(ctx, text), nil
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		ModelsLoaded: s.service.ModelReady(),
	})
}

func (s *HTTPServer) handleClassifyText(w http.ResponseWriter, r *http.Request) {
	var req classifyTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.classifyAndRespond(w, r, req.Text)
}

func (s *HTTPServer) handleClassifyFile(w http.ResponseWriter, r *http.Request) {
	text, ok := s.extractUpload(w, r)
	if !ok {
		return
	}
	s.classifyAndRespond(w, r, text)
}

// handleAnalyze accepts either a JSON body with a text field or a multipart
// upload, mirroring the two dedicated endpoints.
func (s *HTTPServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		s.handleClassifyFile(w, r)
		return
	}
	s.handleClassifyText(w, r)
}

func (s *HTTPServer) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.service.Stats())
}

// extractUpload reads the "file" form field and turns it into plain text.
// Writes the error response itself and reports ok=false on failure.
func (s *HTTPServer) extractUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file too large (max %d bytes)", s.maxUploadBytes))
			return "", false
		}
		s.writeError(w, http.StatusBadRequest, "missing 'file' field")
		return "", false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file too large (max %d bytes)", s.maxUploadBytes))
			return "", false
		}
		s.writeError(w, http.StatusBadRequest, "failed to read upload")
		return "", false
	}

	text, err := s.extractor.ExtractText(content, header.Filename)
	if err != nil {
		s.logger.Warn("file extraction failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		s.writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}

	return text, true
}

func (s *HTTPServer) classifyAndRespond(w http.ResponseWriter, r *http.Request, text string) {
	if strings.TrimSpace(text) == "" {
		s.writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	result := s.service.Classify(r.Context(), text)

	s.logger.Info("text classified",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("category", string(result.Category)),
		zap.Float64("confidence", result.Confidence),
		zap.String("intent", result.Intent))

	s.writeJSON(w, http.StatusOK, classificationResponse{
		Category:          string(result.Category),
		Confidence:        result.Confidence,
		OriginalText:      result.OriginalText,
		SuggestedResponse: result.SuggestedResponse,
		Intent:            result.Intent,
		ProcessingID:      result.ProcessingID,
	})
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}
