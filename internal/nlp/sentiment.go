// ABOUTME: Maps raw classifier output to a coarse sentiment and a similarity threshold
// ABOUTME: Polar labels below the 0.7 confidence cutoff collapse to neutral
package nlp

import "github.com/eventscout/eventscout/internal/models"

// ConfidenceCutoff is the minimum classifier confidence for a polar label
// to count. At or below the cutoff the query is treated as neutral.
const ConfidenceCutoff = 0.7

// Similarity thresholds per sentiment. Negative-context queries require
// stronger semantic agreement before an event is surfaced; neutral queries
// are the most permissive.
const (
	ThresholdPositive = 0.4
	ThresholdNeutral  = 0.3
	ThresholdNegative = 0.5
)

// MapSentiment reduces a raw classification to the coarse context label.
// A POSITIVE or NEGATIVE label maps through only when score > 0.7;
// everything else is neutral.
func MapSentiment(c models.Classification) models.Sentiment {
	switch {
	case c.Label == models.LabelNegative && c.Score > ConfidenceCutoff:
		return models.SentimentNegative
	case c.Label == models.LabelPositive && c.Score > ConfidenceCutoff:
		return models.SentimentPositive
	default:
		return models.SentimentNeutral
	}
}

// ThresholdFor returns the minimum cosine similarity an event must strictly
// exceed to be eligible under the given sentiment.
func ThresholdFor(s models.Sentiment) float64 {
	switch s {
	case models.SentimentPositive:
		return ThresholdPositive
	case models.SentimentNegative:
		return ThresholdNegative
	default:
		return ThresholdNeutral
	}
}
