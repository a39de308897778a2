package marketing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/campaign-loader/internal/config"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
)

const maxErrorBody = 4 << 10

// Client talks to the campaign listsubscribe endpoint.
type Client struct {
	apiURL     string
	authScheme string
	listKey    string
	httpClient *http.Client
}

func NewClient(cfg config.MarketingConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg config.MarketingConfig, httpClient *http.Client) *Client {
	return &Client{
		apiURL:     cfg.APIURL,
		authScheme: cfg.AuthScheme,
		listKey:    cfg.ListKey,
		httpClient: httpClient,
	}
}

// Subscribe adds one contact to the campaign list. A returned response still has to be
// checked for an application-level status; transport and HTTP failures come back as errors.
func (c *Client) Subscribe(ctx context.Context, accessToken string, contact domain.Contact) (*SubscribeResponse, error) {
	leadInfo, err := json.Marshal(contact.LeadInfo())
	if err != nil {
		return nil, fmt.Errorf("error marshalling lead info: %w", err)
	}

	form := url.Values{}
	form.Set("resfmt", "JSON")
	form.Set("leadinfo", string(leadInfo))
	if c.listKey != "" {
		form.Set("listkey", c.listKey)
	}

	header := http.Header{}
	header.Set("Authorization", c.authScheme+" "+accessToken)

	return postForm[SubscribeResponse](ctx, c.httpClient, c.apiURL, form, header)
}

func postForm[Resp any](ctx context.Context, httpClient *http.Client, target string, form url.Values, header http.Header) (*Resp, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			apiErr.Code = string(errResp.Code)
			apiErr.Message = errResp.Message
		}
		return nil, apiErr
	}

	var out Resp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
