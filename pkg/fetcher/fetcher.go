package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/caching"
	"github.com/dtnitsch/page-analyser/pkg/document"
)

const maxBodyBytes = 16 << 20

// ErrBodyTooLarge is returned for responses over the body size limit.
var ErrBodyTooLarge = errors.New("response body too large")

// Options configures a Fetcher. Zero values fall back to sane defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Cache     *caching.Cache // optional
}

type Fetcher struct {
	client    *http.Client
	userAgent string
	cache     *caching.Cache
}

func NewFetcher(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "page-analyser/1.0"
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		cache:     opts.Cache,
	}
}

// Load reads src and parses it into a document tree.
func (f *Fetcher) Load(ctx context.Context, src models.Source) (document.Tree, error) {
	body, err := f.Read(ctx, src)
	if err != nil {
		return nil, err
	}
	doc, err := document.FromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Read returns the raw HTML for src without parsing it.
func (f *Fetcher) Read(ctx context.Context, src models.Source) ([]byte, error) {
	switch src.Mode {
	case models.SourceURL:
		return f.GetHtmlBytes(ctx, src.Value)
	case models.SourceMarkup:
		return []byte(src.Value), nil
	case models.SourceFile:
		data, err := os.ReadFile(src.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported source mode: %s", src.Mode)
	}
}

func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bodyBytes) > maxBodyBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, maxBodyBytes)
	}

	if f.cache != nil {
		// A cache write failure only costs a refetch later.
		_ = f.cache.Set(url, bodyBytes)
	}
	return bodyBytes, nil
}
