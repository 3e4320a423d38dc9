// Package fetcher retrieves the source article over HTTP using gocolly.
package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Page is the raw result of a single fetch.
type Page struct {
	URL        string
	StatusCode int
	Body       []byte
}

// StatusError reports a response whose status code indicates failure.
// It is fatal for the run; there is no retry.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.Code, e.URL)
}

// Fetcher performs a single blocking GET via a Colly collector.
type Fetcher struct {
	cfg           Config
	baseCollector *colly.Collector
	logger        *zap.Logger
}

// New builds a Fetcher.
func New(cfg Config, logger *zap.Logger) *Fetcher {
	c := colly.NewCollector() // synchronous: colly v2.1.0's Async option ignores its bool arg and always enables async
	c.WithTransport(newHTTPTransport())
	return &Fetcher{
		cfg:           cfg,
		baseCollector: c,
		logger:        logger,
	}
}

// Fetch executes one HTTP GET for url and returns the raw page.
// Transport failures come back wrapped; non-2xx responses come back
// as a *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Page, error) {
	collector := f.baseCollector.Clone()
	// Clone shares the base collector's visited-URL store; without this a
	// rerun against the same URL fails with "already visited".
	collector.AllowURLRevisit = true
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	var (
		result   Page
		fetchErr error
	)

	collector.OnResponse(func(r *colly.Response) {
		result = Page{
			URL:        r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       append([]byte(nil), r.Body...),
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = &StatusError{URL: url, Code: r.StatusCode}
			return
		}
		fetchErr = err
	})

	if err := f.runCollector(ctx, collector, url, &fetchErr); err != nil {
		return Page{}, err
	}

	f.logger.Debug("fetched page",
		zap.String("url", result.URL),
		zap.Int("status", result.StatusCode),
		zap.Int("bytes", len(result.Body)))
	return result, nil
}

func (f *Fetcher) runCollector(ctx context.Context, collector *colly.Collector, url string, fetchErr *error) error {
	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		if *fetchErr != nil {
			if statusErr, ok := (*fetchErr).(*StatusError); ok {
				return statusErr
			}
			return fmt.Errorf("fetching %s: %w", url, *fetchErr)
		}
		if err != nil {
			return fmt.Errorf("fetching %s: %w", url, err)
		}
		return nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
	}
}
