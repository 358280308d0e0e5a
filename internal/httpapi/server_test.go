// ABOUTME: Tests for the HTTP API with stub providers behind a real engine
// ABOUTME: Covers input validation, terminal-branch messages, events payload, CORS
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/eventscout/eventscout/internal/catalog"
	"github.com/eventscout/eventscout/internal/models"
	"github.com/eventscout/eventscout/internal/recommend"
)

type stubEmbedder struct {
	vectors   map[string][]float64
	fallback  []float64
	textCalls int
}

func (s *stubEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	s.textCalls++
	return s.vectorFor(text), nil
}

func (s *stubEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = s.vectorFor(t)
	}
	return out, nil
}

func (s *stubEmbedder) vectorFor(text string) []float64 {
	if v, ok := s.vectors[text]; ok {
		return v
	}
	return s.fallback
}

type stubClassifier struct {
	classifyFunc func(text string) (models.Classification, error)
	calls        int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (models.Classification, error) {
	s.calls++
	if s.classifyFunc != nil {
		return s.classifyFunc(text)
	}
	return models.Classification{Label: models.LabelPositive, Score: 0.5}, nil
}

type testFixture struct {
	server     *Server
	embedder   *stubEmbedder
	classifier *stubClassifier
}

func setupTestServer(t *testing.T) *testFixture {
	t.Helper()

	cat, err := catalog.New([][]string{
		{"Month", "Description", "Venue"},
		{"December", "Ice skating under holiday lights", "City Park"},
		{"December", "Craft fair at the armory", "Armory"},
		{"July", "Beach bonfire with live music", "North Shore"},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	emb := &stubEmbedder{
		vectors: map[string][]float64{
			"Ice skating under holiday lights": {1, 0, 0},
			"Craft fair at the armory":         {0, 1, 0},
			"Beach bonfire with live music":    {0, 0, 1},
			"I want something fun in December": {0.9, 0.1, 0},
			"everything is awful":              {0, 0, 0},
		},
		fallback: []float64{0.5, 0.5, 0},
	}
	cls := &stubClassifier{
		classifyFunc: func(text string) (models.Classification, error) {
			if text == "everything is awful" {
				return models.Classification{Label: models.LabelNegative, Score: 0.92}, nil
			}
			return models.Classification{Label: models.LabelPositive, Score: 0.5}, nil
		},
	}

	engine, err := recommend.NewEngine(context.Background(), cat, emb, cls, zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	server, err := NewServer(engine, zap.NewNop(), &Config{
		Host:           "localhost",
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}

	return &testFixture{server: server, embedder: emb, classifier: cls}
}

func postRecommend(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewBufferString(body))
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func TestNewServer_Validation(t *testing.T) {
	fx := setupTestServer(t)

	if _, err := NewServer(nil, zap.NewNop(), nil); err == nil {
		t.Error("expected error for nil engine")
	}
	if _, err := NewServer(fx.server.engine, nil, nil); err == nil {
		t.Error("expected error for nil logger")
	}

	// nil config falls back to defaults
	s, err := NewServer(fx.server.engine, zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewServer() with nil config failed: %v", err)
	}
	if s.config.Port != 8080 || s.config.Host != "localhost" {
		t.Errorf("default config = %+v, want localhost:8080", s.config)
	}
}

func TestHandleHealth(t *testing.T) {
	fx := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	fx.server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
	if resp.CatalogSize != 3 {
		t.Errorf("CatalogSize = %d, want 3", resp.CatalogSize)
	}
}

func TestHandleRecommend_EmptyInput(t *testing.T) {
	fx := setupTestServer(t)
	startupText := fx.embedder.textCalls
	startupCls := fx.classifier.calls

	for _, body := range []string{`{"user_input": ""}`, `{}`, ``} {
		rec := postRecommend(t, fx.server, body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, rec.Code)
		}

		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshaling response: %v", err)
		}
		if resp.Error != "Please provide a valid user input." {
			t.Errorf("Error = %q, want the fixed invalid-input message", resp.Error)
		}
	}

	// No provider calls may happen for rejected input
	if fx.embedder.textCalls != startupText || fx.classifier.calls != startupCls {
		t.Error("providers must not be invoked for empty input")
	}
}

func TestHandleRecommend_Events(t *testing.T) {
	fx := setupTestServer(t)

	rec := postRecommend(t, fx.server, `{"user_input": "I want something fun in December"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Events []map[string]string `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}

	if len(resp.Events) == 0 || len(resp.Events) > 3 {
		t.Fatalf("got %d events, want 1-3", len(resp.Events))
	}

	top := resp.Events[0]
	if top["Description"] != "Ice skating under holiday lights" {
		t.Errorf("top event Description = %q, want the closest December row", top["Description"])
	}
	// Every original catalog column is passed through
	if top["Venue"] != "City Park" {
		t.Errorf("top event Venue = %q, want City Park", top["Venue"])
	}
	if top["Month"] != "December" {
		t.Errorf("top event Month = %q, want December", top["Month"])
	}
}

func TestHandleRecommend_NoEventsForMonth(t *testing.T) {
	fx := setupTestServer(t)

	rec := postRecommend(t, fx.server, `{"user_input": "anything in August?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}

	var msg string
	if err := json.Unmarshal(resp["message"], &msg); err != nil {
		t.Fatalf("response has no message field: %s", rec.Body.String())
	}
	if msg != "No events found for August." {
		t.Errorf("message = %q, want %q", msg, "No events found for August.")
	}
	if _, ok := resp["events"]; ok {
		t.Error("message-only response must not carry an events key")
	}
}

func TestHandleRecommend_NoRelevantEvents(t *testing.T) {
	fx := setupTestServer(t)

	// Confident negative sentiment selects threshold 0.5; the query vector
	// is far from every catalog description.
	rec := postRecommend(t, fx.server, `{"user_input": "everything is awful"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if resp.Message != "No relevant events found." {
		t.Errorf("message = %q, want %q", resp.Message, "No relevant events found.")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	fx := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	fx.server.echo.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	fx := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	fx.server.echo.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "https://evil.example" {
		t.Error("disallowed origin must not be echoed back")
	}
}
