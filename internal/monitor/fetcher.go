package monitor

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"djwatch/internal/common"
	"djwatch/internal/config"
)

// PageFetcher retrieves campaign page HTML over HTTP
type PageFetcher struct {
	client *resty.Client
	logger zerolog.Logger
}

// NewPageFetcher creates a fetcher honoring the configured timeout and User-Agent
func NewPageFetcher(cfg config.MonitorConfig, logger zerolog.Logger) *PageFetcher {
	client := resty.New().
		SetTimeout(cfg.HTTPTimeout()).
		SetHeader("User-Agent", cfg.UserAgent)

	return &PageFetcher{
		client: client,
		logger: logger.With().Str("component", "PageFetcher").Logger(),
	}
}

// FetchPage downloads the page body for the given URL
func (pf *PageFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := pf.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", common.NewNetworkError(url, "request failed", err)
	}

	if resp.IsError() {
		return "", common.NewHTTPErrorWithURL(resp.StatusCode(), "unexpected response status", url)
	}

	pf.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("Fetched page")

	return string(resp.Body()), nil
}
