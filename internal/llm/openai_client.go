// ABOUTME: OpenAI client for embeddings and sentiment classification
// ABOUTME: Uses text-embedding-3-small for vectors, gpt-4o-mini for sentiment (configurable)
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/eventscout/eventscout/internal/models"
	"github.com/eventscout/eventscout/internal/util"
)

const (
	// DefaultChatModel is the default model for sentiment classification
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	chatModel := os.Getenv("EVENTSCOUT_CHAT_MODEL")
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	embeddingModel := os.Getenv("EVENTSCOUT_EMBEDDING_MODEL")

	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      chatModel,
		EmbeddingModel: embeddingModel,
		Timeout:        time.Second * 30,
		MaxRetries:     3,
		RetryDelay:     time.Second * 2,
	}
}

// Client wraps the OpenAI API client with retry logic. It is the concrete
// backend for both the Embedder and the SentimentClassifier capabilities.
type Client struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
}

// NewClient creates a new OpenAI client with the given API key using default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a new OpenAI client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = time.Second * 30
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	embeddingModel := openai.EmbeddingModel(config.EmbeddingModel)
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}

	return &Client{
		client:         openai.NewClient(config.APIKey),
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
		timeout:        timeout,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
	}, nil
}

// EmbedText generates the embedding vector for a single text
func (c *Client) EmbedText(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedTexts generates embedding vectors for a batch of texts in one API
// call, returned in input order
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.client.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: c.embeddingModel,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: expected %d embeddings, got %d", attempt+1, len(texts), len(resp.Data))
			continue
		}

		// Convert []float32 to []float64, in input order
		vectors := make([][]float64, len(texts))
		for _, data := range resp.Data {
			vec := make([]float64, len(data.Embedding))
			for i, v := range data.Embedding {
				vec[i] = float64(v)
			}
			vectors[data.Index] = vec
		}

		return vectors, nil
	}

	return nil, fmt.Errorf("failed to generate embeddings after %d attempts: %w", c.maxRetries+1, lastErr)
}

// Classify runs sentiment classification over the text, returning the top
// label (POSITIVE or NEGATIVE) and its confidence score
func (c *Client) Classify(ctx context.Context, text string) (models.Classification, error) {
	systemPrompt := `You are a sentiment classification assistant. Given a text, classify its overall sentiment.

Return ONLY a JSON object with exactly two fields:
- label: "POSITIVE" or "NEGATIVE" (the more likely polarity)
- score: confidence in that label, a number between 0.0 and 1.0

Example: {"label": "NEGATIVE", "score": 0.93}`

	userPrompt := fmt.Sprintf("Classify the sentiment of this text:\n\n%s", text)

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: 0.0, // Deterministic classification
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		content := resp.Choices[0].Message.Content

		var result models.Classification
		if err := json.Unmarshal([]byte(content), &result); err != nil {
			lastErr = fmt.Errorf("attempt %d: failed to parse JSON: %w", attempt+1, err)
			continue
		}

		if result.Label != models.LabelPositive && result.Label != models.LabelNegative {
			lastErr = fmt.Errorf("attempt %d: unexpected label %q", attempt+1, result.Label)
			continue
		}

		return result, nil
	}

	return models.Classification{}, fmt.Errorf("failed to classify sentiment after %d attempts: %w", c.maxRetries+1, lastErr)
}
