package pexels

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/hsmedia/lessonpack/internal/media"
)

const DefaultBaseURL = "https://api.pexels.com"

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

func NewClient(apiKey, baseURL string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", apiKey)

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

type searchResponse struct {
	Photos []photo `json:"photos"`
}

type photo struct {
	ID  int      `json:"id"`
	Alt string   `json:"alt"`
	Src photoSrc `json:"src"`
}

type photoSrc struct {
	Large string `json:"large"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// FindImage implements the media.ImageFinder interface. It tries each
// query in order and stops at the first photo hit. Exhausting the ladder
// without a hit is not an error.
func (client *Client) FindImage(ctx context.Context, queries []string) (*media.Image, error) {
	for _, query := range queries {
		image, err := client.searchWithRetry(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search(%q) > %w", query, err)
		}
		if image != nil {
			return image, nil
		}
	}
	return nil, nil
}

func (client *Client) searchWithRetry(ctx context.Context, query string) (*media.Image, error) {
	var result *media.Image
	if err := retry.Do(
		func() error {
			image, err := client.search(ctx, query)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = image
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (client *Client) search(ctx context.Context, query string) (*media.Image, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":       query,
			"per_page":    "1",
			"orientation": "landscape",
		}).
		SetResult(&searchResponse{}).
		Get("/v1/search")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*searchResponse)
	if responseBody == nil || len(responseBody.Photos) == 0 {
		return nil, nil
	}
	photoURL := responseBody.Photos[0].Src.Large
	if photoURL == "" {
		return nil, nil
	}

	data, err := client.download(ctx, photoURL)
	if err != nil {
		return nil, fmt.Errorf("download > %w", err)
	}
	return &media.Image{Query: query, URL: photoURL, Data: data}, nil
}

// download fetches the photo bytes. An absolute URL bypasses the client's
// base URL.
func (client *Client) download(ctx context.Context, url string) ([]byte, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return response.Bytes(), nil
}
