// ABOUTME: Ranking engine combining month filter, sentiment threshold and cosine similarity
// ABOUTME: Holds the immutable catalog embedding cache computed once at startup
package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/eventscout/eventscout/internal/catalog"
	"github.com/eventscout/eventscout/internal/models"
	"github.com/eventscout/eventscout/internal/nlp"
)

// MaxResults is the number of ranked events a query can return.
const MaxResults = 3

// ErrEmptyQuery is returned when the query text is empty. Callers reject
// empty input before any provider call is made.
var ErrEmptyQuery = errors.New("query text is empty")

// Embedder maps a text to a fixed-length dense vector. Vectors from the
// same instance share dimensionality and are comparable via cosine
// similarity.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}

// SentimentClassifier maps a text to its top polarity label and confidence.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (models.Classification, error)
}

// Outcome distinguishes the three terminal branches of a query.
type Outcome string

const (
	// OutcomeEvents - one to three events ranked above the threshold
	OutcomeEvents Outcome = "events"

	// OutcomeNoEventsForMonth - a month was detected but no catalog row carries it
	OutcomeNoEventsForMonth Outcome = "no_events_for_month"

	// OutcomeNoMatches - no event's similarity strictly exceeded the threshold
	OutcomeNoMatches Outcome = "no_matches"
)

// Result is the outcome of one query through the full pipeline.
type Result struct {
	Outcome   Outcome              `json:"outcome"`
	Context   models.ContextSignal `json:"context"`
	Threshold float64              `json:"threshold"`
	Events    []models.RankedEvent `json:"events,omitempty"`
}

// Engine ranks catalog events against free-text queries. It is constructed
// once at startup, owns the precomputed catalog embeddings, and is immutable
// afterwards, so concurrent requests share it without locking.
type Engine struct {
	catalog    *catalog.Catalog
	vectors    [][]float64 // positionally parallel to catalog rows
	embedder   Embedder
	classifier SentimentClassifier
	logger     *zap.Logger
}

// NewEngine builds an engine, embedding every catalog description in one
// batch call. An embedding failure here is fatal: an engine that cannot
// embed its catalog cannot serve.
func NewEngine(ctx context.Context, cat *catalog.Catalog, embedder Embedder, classifier SentimentClassifier, logger *zap.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	if classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("embedding catalog", zap.Int("rows", cat.Len()))

	vectors, err := embedder.EmbedTexts(ctx, cat.Descriptions())
	if err != nil {
		return nil, fmt.Errorf("failed to embed catalog: %w", err)
	}
	if len(vectors) != cat.Len() {
		return nil, fmt.Errorf("embedded %d vectors for %d catalog rows", len(vectors), cat.Len())
	}

	return &Engine{
		catalog:    cat,
		vectors:    vectors,
		embedder:   embedder,
		classifier: classifier,
		logger:     logger,
	}, nil
}

// CatalogSize returns the number of catalog rows the engine serves.
func (e *Engine) CatalogSize() int {
	return e.catalog.Len()
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Recommend runs the full pipeline for one query: month detection, month
// filter, sentiment-derived threshold, cosine ranking, top-3 truncation.
//
// Subset vectors are never recomputed: the filter retains each row's
// original index, and scoring reads the startup cache by that index.
func (e *Engine) Recommend(ctx context.Context, query string) (Result, error) {
	if query == "" {
		return Result{}, ErrEmptyQuery
	}

	month, hasMonth := nlp.DetectMonth(query)

	subset := e.catalog.Events()
	if hasMonth {
		subset = e.catalog.FilterByMonth(month)
		if len(subset) == 0 {
			// Terminal branch: skip classification and embedding entirely.
			return Result{
				Outcome: OutcomeNoEventsForMonth,
				Context: models.ContextSignal{Month: month, Sentiment: models.SentimentNeutral},
			}, nil
		}
	}

	classification, err := e.classifier.Classify(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment classification failed: %w", err)
	}

	sentiment := nlp.MapSentiment(classification)
	threshold := nlp.ThresholdFor(sentiment)

	// The raw query text is embedded as-is, not lowercased or normalized.
	queryVector, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("query embedding failed: %w", err)
	}

	var ranked []models.RankedEvent
	for _, ev := range subset {
		score := cosineSimilarity(queryVector, e.vectors[ev.Index])
		if score > threshold { // strict: a score equal to the threshold is excluded
			ranked = append(ranked, models.RankedEvent{Event: ev, Score: score})
		}
	}

	// Stable sort keeps catalog encounter order for exact score ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}

	signal := models.ContextSignal{Sentiment: sentiment}
	if hasMonth {
		signal.Month = month
	}

	e.logger.Debug("ranked query",
		zap.String("sentiment", string(sentiment)),
		zap.Float64("threshold", threshold),
		zap.String("month", signal.Month),
		zap.Int("subset", len(subset)),
		zap.Int("matches", len(ranked)),
	)

	if len(ranked) == 0 {
		return Result{Outcome: OutcomeNoMatches, Context: signal, Threshold: threshold}, nil
	}

	return Result{
		Outcome:   OutcomeEvents,
		Context:   signal,
		Threshold: threshold,
		Events:    ranked,
	}, nil
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
