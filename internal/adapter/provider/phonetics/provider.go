// Package phonetics fetches pronunciation audio from an external
// phonetic-data API and classifies the returned URLs into accent buckets.
// Audio is best-effort enrichment: every failure degrades to "nothing
// found" and is never surfaced to callers as an error.
package phonetics

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tdhoang/vocadict-backend/internal/config"
	"github.com/tdhoang/vocadict-backend/internal/provider"
)

// Provider queries the phonetic-data API for audio URLs.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from PhoneticsConfig.
func NewProvider(cfg config.PhoneticsConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "phonetics"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "phonetics"),
	}
}

// FetchAudio looks the word up and returns whatever audio URLs could be
// classified into US/UK buckets. A network error, a non-200 status, or an
// undecodable body all return the empty result.
func (p *Provider) FetchAudio(ctx context.Context, word string) provider.AudioResult {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		p.log.WarnContext(ctx, "phonetics request build failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.AudioResult{}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "phonetics request failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.AudioResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode != http.StatusNotFound {
			p.log.WarnContext(ctx, "phonetics unexpected status", slog.String("word", word), slog.Int("status", resp.StatusCode))
		}
		return provider.AudioResult{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.WarnContext(ctx, "phonetics read body failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.AudioResult{}
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		p.log.WarnContext(ctx, "phonetics decode failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.AudioResult{}
	}

	result := classify(entries)

	p.log.DebugContext(ctx, "phonetics response",
		slog.String("word", word),
		slog.Bool("us", result.US != ""),
		slog.Bool("uk", result.UK != ""),
	)

	return result
}

// classify sorts audio URLs into US/UK buckets by substring matching.
// A URL matching neither pattern is defaulted into the US bucket, but only
// while both buckets are still empty. Once anything is known, unclassified
// URLs are dropped.
func classify(entries []apiEntry) provider.AudioResult {
	var result provider.AudioResult

	for _, entry := range entries {
		for _, ph := range entry.Phonetics {
			if ph.Audio == "" {
				continue
			}
			lower := strings.ToLower(ph.Audio)
			switch {
			case strings.Contains(lower, "-us.mp3") || strings.Contains(lower, "/us/"):
				if result.US == "" {
					result.US = ph.Audio
				}
			case strings.Contains(lower, "-uk.mp3") || strings.Contains(lower, "/uk/"):
				if result.UK == "" {
					result.UK = ph.Audio
				}
			default:
				if result.Empty() {
					result.US = ph.Audio
				}
			}
		}
	}

	return result
}
