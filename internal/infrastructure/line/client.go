package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the LINE Messaging API endpoint.
const DefaultBaseURL = "https://api.line.me"

// maxMessageLen is the LINE hard limit for one text message.
const maxMessageLen = 5000

// Client handles communication with the LINE Messaging API
type Client struct {
	httpClient  *http.Client
	accessToken string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new LINE API client
func NewClient(accessToken, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// LINE's reply endpoint tolerates bursts but throttles sustained traffic;
	// 10 req/s with a burst of 20 stays well inside the published limits.
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		accessToken: accessToken,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

// Reply sends a text message in response to a webhook event's reply token.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	body := replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: clampText(text)}},
	}
	return c.post(ctx, "/v2/bot/message/reply", body)
}

// Push sends a text message to a user or group without a reply token.
func (c *Client) Push(ctx context.Context, to, text string) error {
	body := pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: clampText(text)}},
	}
	return c.post(ctx, "/v2/bot/message/push", body)
}

// post executes one API call with rate limiting and up to 3 attempts for
// transient failures.
func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL, payload)
		if err != nil {
			log.Printf("[LINE] request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			if c.debug {
				log.Printf("[LINE] %s delivered", path)
			}
			return nil
		}

		log.Printf("[LINE] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(respBody))

		// Reply tokens are single-use and expire; 4xx other than 429 will not
		// succeed on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return fmt.Errorf("%w: status %d", domain.ErrLineAPIFailure, resp.StatusCode)
		}

		lastErr = fmt.Errorf("%w: status %d", domain.ErrLineAPIFailure, resp.StatusCode)
		time.Sleep(time.Duration(attempt*500) * time.Millisecond)
	}

	return lastErr
}

func (c *Client) doRequest(ctx context.Context, reqURL string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLineAPIFailure, err)
	}

	return resp, nil
}

// clampText truncates a message to the LINE per-message limit.
func clampText(text string) string {
	if len(text) <= maxMessageLen {
		return text
	}
	runes := []rune(text)
	if len(runes) > maxMessageLen {
		runes = runes[:maxMessageLen]
	}
	return string(runes)
}
