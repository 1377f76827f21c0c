package narrative

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultMaxPerMin = 20
	cacheSize        = 512
)

// Client calls the narrative service over HTTP. A nil *Client is valid and
// permanently disabled, so callers can wire it unconditionally and let
// configuration decide.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *lru.Cache[string, string]

	// Rate limiting: max calls per minute.
	mu        sync.Mutex
	callCount int
	resetAt   time.Time
	maxPerMin int
}

// NewClient creates a narrative service client. Returns nil when baseURL is
// empty, which disables generation entirely.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		return nil
	}
	cache, _ := lru.New[string, string](cacheSize)
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      cache,
		maxPerMin:  defaultMaxPerMin,
	}
}

// Enabled reports whether the client can make calls.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

type generateRequest struct {
	Kind      string `json:"kind"`
	Variables Vars   `json:"variables"`
}

type generateResponse struct {
	Success  bool `json:"success"`
	Response struct {
		Content string `json:"content"`
	} `json:"response"`
	ProcessingTime int  `json:"processing_time,omitempty"`
	Cached         bool `json:"cached,omitempty"`
}

// Generate requests one piece of prose. Identical prompts are served from an
// in-process LRU cache; the service may additionally report its own cache
// hits. The response body is parsed defensively: a non-JSON body is used as
// plain text rather than rejected.
func (c *Client) Generate(ctx context.Context, kind string, vars Vars) (string, error) {
	if !c.Enabled() {
		return "", domain.ErrNarrativeUnavailable
	}

	key := cacheKey(kind, vars)
	if text, ok := c.cache.Get(key); ok {
		return text, nil
	}

	if err := c.reserveCall(); err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{Kind: kind, Variables: vars})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("narrative call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narrative service status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	text := extractContent(respBody)
	if text == "" {
		return "", fmt.Errorf("empty narrative response")
	}

	logger.FromContext(ctx).Debug("narrative generated", "kind", kind, "bytes", len(text))
	c.cache.Add(key, text)
	return text, nil
}

// reserveCall enforces the per-minute call budget.
func (c *Client) reserveCall() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	if now.After(c.resetAt) {
		c.callCount = 0
		c.resetAt = now.Add(time.Minute)
	}
	if c.callCount >= c.maxPerMin {
		return fmt.Errorf("%w: rate limit exceeded (%d calls/min)", domain.ErrNarrativeUnavailable, c.maxPerMin)
	}
	c.callCount++
	return nil
}

// extractContent pulls the prose out of a response. The service is supposed
// to return the generate envelope, but free text happens; use it verbatim.
func extractContent(body []byte) string {
	var envelope generateResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Response.Content != "" {
		return strings.TrimSpace(envelope.Response.Content)
	}
	return strings.TrimSpace(string(body))
}

func cacheKey(kind string, vars Vars) string {
	raw, err := json.Marshal(vars)
	if err != nil {
		raw = []byte(fmt.Sprint(vars))
	}
	sum := sha256.Sum256(append([]byte(kind+"|"), raw...))
	return hex.EncodeToString(sum[:])
}
