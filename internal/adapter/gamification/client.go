package gamification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

const defaultTimeout = 5 * time.Second

// Client delivers reward instructions to the gamification service over HTTP.
// All calls are fire-and-forget from the scheduler's perspective: the caller
// logs failures and moves on.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given gamification base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gamification"),
	}
}

type awardRequest struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Award     string    `json:"award"`
}

// AwardMemorizationCredit credits the learner for a successful recall.
func (c *Client) AwardMemorizationCredit(ctx context.Context, learnerID uuid.UUID) error {
	return c.award(ctx, learnerID, domain.RewardMemorizationCredit)
}

// AwardPerfectRecallBonus grants the bonus for a flawless recall.
func (c *Client) AwardPerfectRecallBonus(ctx context.Context, learnerID uuid.UUID) error {
	return c.award(ctx, learnerID, domain.RewardPerfectRecallBonus)
}

func (c *Client) award(ctx context.Context, learnerID uuid.UUID, reward domain.RewardInstruction) error {
	body, err := json.Marshal(awardRequest{LearnerID: learnerID, Award: reward.String()})
	if err != nil {
		return fmt.Errorf("gamification: encode request: %w", err)
	}

	reqURL := c.baseURL + "/api/v1/awards"

	c.log.DebugContext(ctx, "gamification request",
		slog.String("reward", reward.String()),
		slog.String("learner_id", learnerID.String()))

	resp, err := c.doWithRetry(ctx, reqURL, body, reward)
	if err != nil {
		return fmt.Errorf("gamification: request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gamification: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// doWithRetry executes the award request with a single retry on 5xx or
// network errors. The request is rebuilt per attempt so the body can be
// re-sent.
func (c *Client) doWithRetry(ctx context.Context, reqURL string, body []byte, reward domain.RewardInstruction) (*http.Response, error) {
	resp, err := c.do(ctx, reqURL, body)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "gamification retry",
		slog.String("reward", reward.String()),
		slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.do(ctx, reqURL, body)
}

func (c *Client) do(ctx context.Context, reqURL string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}
