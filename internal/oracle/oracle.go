package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openrouter "github.com/revrost/go-openrouter"
	"go.uber.org/zap"

	"wingorder/internal/config"
)

var ErrNotConfigured = errors.New("oracle is not configured")

// Client asks a chat model to pick the catalog entry that best matches
// a raw order-sheet product name. It is the last matching layer, after
// every deterministic one has missed.
type Client struct {
	client  *openrouter.Client
	model   string
	limiter *RateLimiter
	logger  *zap.Logger
	enabled bool
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	logger = logger.Named("oracle")
	apiKey := strings.TrimSpace(cfg.OracleAPIKey)
	model := strings.TrimSpace(cfg.OracleModel)

	if apiKey == "" || model == "" {
		logger.Warn("oracle config is incomplete; fuzzy matching will stop at the deterministic layers",
			zap.Bool("has_api_key", apiKey != ""),
			zap.Bool("has_model", model != ""),
		)
		return &Client{model: model, logger: logger}
	}

	clientCfg := openrouter.DefaultConfig(apiKey)
	if strings.TrimSpace(cfg.OracleBaseURL) != "" {
		clientCfg.BaseURL = strings.TrimSpace(cfg.OracleBaseURL)
	}
	clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.OracleTimeoutMs) * time.Millisecond}

	return &Client{
		client:  openrouter.NewClientWithConfig(*clientCfg),
		model:   model,
		limiter: NewRateLimiter(cfg.OracleRateLimitRPS),
		logger:  logger,
		enabled: true,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.enabled
}

// BestMatch returns the candidate display name the model picks for the
// raw product name, or "" when the reply is not an exact candidate.
func (c *Client) BestMatch(ctx context.Context, raw string, candidates []string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	if len(candidates) == 0 {
		return "", nil
	}

	c.limiter.WaitTurn()

	prompt := fmt.Sprintf(
		"주문서 상품명 '%s'와 가장 일치하는 품목을 골라줘. 품목 리스트:\n%s\n정확한 이름만 답변해줘.",
		raw, strings.Join(candidates, "\n"),
	)

	resp, err := c.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openrouter.ChatCompletionMessage{openrouter.UserMessage(prompt)},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("oracle request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content.Text)
	for _, candidate := range candidates {
		if answer == candidate {
			return candidate, nil
		}
	}
	c.logger.Debug("oracle reply did not echo a candidate",
		zap.String("raw", raw),
		zap.String("answer", answer),
	)
	return "", nil
}
