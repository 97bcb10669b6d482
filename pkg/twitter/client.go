package twitter

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"twitterosint/pkg/config"
	"twitterosint/pkg/errors"
	"twitterosint/pkg/logger"
	"twitterosint/pkg/retry"
)

// Client is a Twitter v1.1 REST API client authenticated with an
// application bearer token
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	retry      *retry.Config
	logger     logger.Logger
}

// NewClient creates a new Twitter API client.
// A nil retry configuration performs each request once.
func NewClient(cfg config.TwitterConfig, retryCfg *retry.Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}
	if retryCfg == nil {
		retryCfg = retry.DefaultConfig()
	}
	baseURL := cfg.APIURL
	if baseURL == "" {
		baseURL = config.DefaultAPIURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "twitterosint/1.0"
	}

	headers := map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	}
	if cfg.BearerToken != "" {
		headers["Authorization"] = "Bearer " + cfg.BearerToken
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		headers: headers,
		baseURL: baseURL,
		retry:   retryCfg,
		logger:  log,
	}
}

// doRequest performs an HTTP request with the configured headers
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errors.New(errors.KindNetwork, 0, "network error: %v", err)
	}

	logger.LogRequest(c.logger, req.Method, req.URL.String(), resp.StatusCode, duration)

	return resp, nil
}

// getJSONOnce performs one GET request and decodes the JSON response
func (c *Client) getJSONOnce(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.New(errors.KindUnknown, 0, "failed to create request: %v", err)
	}

	resp, err := c.doRequest(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New(errors.KindNetwork, resp.StatusCode, "failed to read response body: %v", err)
	}

	if err := c.checkResponseStatus(resp, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		var apiErr *errors.Error
		if stderrors.As(err, &apiErr) {
			apiErr.Code = resp.StatusCode
			return apiErr
		}

		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          url,
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return errors.New(errors.KindParsing, resp.StatusCode, "failed to parse JSON: %v", err)
	}

	return nil
}

// getJSON performs a GET request under the client's retry policy
func (c *Client) getJSON(ctx context.Context, url string, target interface{}) error {
	return retry.Do(ctx, func(ctx context.Context) error {
		return c.getJSONOnce(ctx, url, target)
	}, c.retry)
}

// checkResponseStatus converts a non-200 response into an API error
func (c *Client) checkResponseStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	apiErr := errors.FromResponse(resp.StatusCode, body)
	fields := map[string]interface{}{
		"status":   resp.StatusCode,
		"url":      resp.Request.URL.String(),
		"kind":     string(apiErr.Kind),
		"api_code": apiErr.APICode,
	}
	if errors.IsRetryableStatusCode(resp.StatusCode) {
		c.logger.ErrorWithFields("API error", fields)
	} else {
		c.logger.WarnWithFields("API request rejected", fields)
	}

	return apiErr
}

// FetchIDPage fetches a single page of a friends or followers listing
func (c *Client) FetchIDPage(ctx context.Context, relation Relation, id Identifier, cursor int64, count int) (*IDsPage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !relation.Valid() {
		return nil, fmt.Errorf("unknown relation %q", relation)
	}

	url := GetIDsURL(c.baseURL, relation, id, cursor, count)
	c.logger.DebugWithFields("fetching ids page", map[string]interface{}{
		"relation": string(relation),
		"account":  id.String(),
		"cursor":   cursor,
		"count":    count,
	})

	var page IDsPage
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// FetchAllIDs walks a listing from the first page until next_cursor is 0
func (c *Client) FetchAllIDs(ctx context.Context, relation Relation, id Identifier) ([]int64, error) {
	var ids []int64
	cursor := CursorStart

	for {
		page, err := c.FetchIDPage(ctx, relation, id, cursor, MaxIDsPerPage)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page.IDs...)

		if page.NextCursor == 0 || page.NextCursor == cursor {
			break
		}
		cursor = page.NextCursor
	}

	c.logger.DebugWithFields("fetched full id listing", map[string]interface{}{
		"relation": string(relation),
		"account":  id.String(),
		"total":    len(ids),
	})

	return ids, nil
}

// LookupUsers resolves IDs to profiles in batches of MaxLookupBatch.
// The order of the result is defined by the API, not by ids.
func (c *Client) LookupUsers(ctx context.Context, ids []int64) ([]User, error) {
	users := make([]User, 0, len(ids))

	for start := 0; start < len(ids); start += MaxLookupBatch {
		end := start + MaxLookupBatch
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := c.lookup(ctx, GetLookupURL(c.baseURL, ids[start:end]))
		if err != nil {
			return nil, err
		}
		users = append(users, batch...)
	}

	return users, nil
}

func (c *Client) lookup(ctx context.Context, url string) ([]User, error) {
	return retry.DoWithResult(ctx, func(ctx context.Context) ([]User, error) {
		var users []User
		if err := c.getJSONOnce(ctx, url, &users); err != nil {
			return nil, err
		}
		return users, nil
	}, c.retry)
}

// ShowUser fetches a single profile
func (c *Client) ShowUser(ctx context.Context, id Identifier) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c.logger.DebugWithFields("fetching user profile", map[string]interface{}{
		"account": id.String(),
	})

	url := GetShowUserURL(c.baseURL, id)
	return retry.DoWithResult(ctx, func(ctx context.Context) (*User, error) {
		var user User
		if err := c.getJSONOnce(ctx, url, &user); err != nil {
			return nil, err
		}
		return &user, nil
	}, c.retry)
}
