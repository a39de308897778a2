package marketing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/config"
)

// Credential is an access token and the window during which it may be reused.
type Credential struct {
	Value    string
	IssuedAt time.Time
	Validity time.Duration
}

// ValidAt reports whether the credential can still be used at now.
func (c Credential) ValidAt(now time.Time) bool {
	return c.Value != "" && now.Sub(c.IssuedAt) < c.Validity
}

type TokenOption func(*TokenCache)

func WithTokenClock(now func() time.Time) TokenOption {
	return func(c *TokenCache) { c.now = now }
}

func WithTokenSleep(sleep func(ctx context.Context, d time.Duration) error) TokenOption {
	return func(c *TokenCache) { c.sleep = sleep }
}

func WithTokenLogger(logger *slog.Logger) TokenOption {
	return func(c *TokenCache) { c.logger = logger }
}

// TokenCache hands out an access token, refreshing it from the accounts server when it
// is missing or older than its validity window.
type TokenCache struct {
	mu         sync.Mutex
	credential Credential
	refreshes  int

	tokenURL   string
	form       url.Values
	validity   time.Duration
	maxRetries int
	baseDelay  time.Duration
	httpClient *http.Client

	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	logger *slog.Logger
}

func NewTokenCache(cfg config.OAuthConfig, opts ...TokenOption) *TokenCache {
	form := url.Values{}
	form.Set("refresh_token", cfg.RefreshToken)
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)
	form.Set("grant_type", "refresh_token")

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	c := &TokenCache{
		tokenURL:   cfg.TokenURL,
		form:       form,
		validity:   cfg.Validity,
		maxRetries: maxRetries,
		baseDelay:  cfg.BaseDelay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
		sleep:      sleepContext,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns a valid access token. When every refresh attempt fails it returns ""
// and an error wrapping ErrCredentialUnavailable; the next call starts over.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.credential.ValidAt(c.now()) {
		return c.credential.Value, nil
	}
	return c.refresh(ctx)
}

// Invalidate drops the held credential so the next Token call refreshes.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = Credential{}
}

// Refreshes counts refresh calls made against the accounts server.
func (c *TokenCache) Refreshes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshes
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	attempts := c.maxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, c.backoff(attempt-1)); err != nil {
				lastErr = err
				break
			}
		}

		token, err := c.fetch(ctx)
		if err == nil {
			c.credential = Credential{
				Value:    token,
				IssuedAt: c.now(),
				Validity: c.validity,
			}
			c.logger.Debug("access token refreshed", "attempt", attempt+1)
			return token, nil
		}

		lastErr = err
		c.logger.Error("error fetching token", "attempt", attempt+1, "max_attempts", attempts, "error", err)
	}

	c.credential = Credential{}
	return "", fmt.Errorf("%w: %w", ErrCredentialUnavailable, lastErr)
}

func (c *TokenCache) fetch(ctx context.Context) (string, error) {
	c.refreshes++

	resp, err := postForm[TokenResponse](ctx, c.httpClient, c.tokenURL, c.form, nil)
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("token endpoint returned error: %s", resp.Error)
	}
	if resp.AccessToken == "" {
		return "", errors.New("token endpoint returned no access_token")
	}
	return resp.AccessToken, nil
}

// backoff grows exponentially with jitter; a zero base delay disables waiting.
func (c *TokenCache) backoff(attempt int) time.Duration {
	if c.baseDelay <= 0 {
		return 0
	}
	base := c.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(1000)) * time.Millisecond

	return base + jitter
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
