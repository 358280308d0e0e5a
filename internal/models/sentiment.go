// ABOUTME: Sentiment types shared by the classifier and the ranking engine
// ABOUTME: Defines the raw classifier output and the coarse context label
package models

// Classification is the raw output of a sentiment classifier backend:
// the top label and its confidence score.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier label values. These follow the POSITIVE/NEGATIVE convention
// of sentiment-analysis model heads.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

// Sentiment is the coarse per-query context label derived from a
// classification. It is consumed only to select a similarity threshold.
type Sentiment string

const (
	// SentimentPositive - confidently positive query (confidence > 0.7)
	SentimentPositive Sentiment = "positive"

	// SentimentNegative - confidently negative query (confidence > 0.7)
	SentimentNegative Sentiment = "negative"

	// SentimentNeutral - everything else, including low-confidence polar labels
	SentimentNeutral Sentiment = "neutral"
)

// ContextSignal is the transient per-request context derived from the raw
// query text. It is consumed immediately by the ranking engine and never
// persisted.
type ContextSignal struct {
	Month     string    `json:"month,omitempty"`
	Sentiment Sentiment `json:"sentiment"`
}
