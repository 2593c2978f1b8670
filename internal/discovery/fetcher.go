package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ms-discovery/internal/config"
	"ms-discovery/internal/logger"
	"ms-discovery/internal/models"
)

const eventsPath = "/discovery/v2/events.json"

var ErrUnexpectedStatus = errors.New("discovery service returned unexpected status")

// Fetcher looks up upcoming events for one artist at a time.
type Fetcher struct {
	client *http.Client
	cfg    config.DiscoveryConfig
	logger *logger.Logger
}

// NewFetcher creates a Fetcher. A nil client gets a plain http.Client using
// cfg.Timeout.
func NewFetcher(client *http.Client, cfg config.DiscoveryConfig, log *logger.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = config.PageSize
	}
	if cfg.DMAID == 0 {
		cfg.DMAID = config.DefaultDMAID
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Fetcher{client: client, cfg: cfg, logger: log}
}

// EventsURL builds the search URL for artist. Spaces in the keyword become '+'.
func (f *Fetcher) EventsURL(artist string) string {
	return fmt.Sprintf("%s%s?size=%d&keyword=%s&dmaId=%d&apikey=%s",
		f.cfg.BaseURL, eventsPath, f.cfg.PageSize,
		url.QueryEscape(artist), f.cfg.DMAID, url.QueryEscape(f.cfg.APIKey))
}

func (f *Fetcher) redact(u string) string {
	if f.cfg.APIKey == "" {
		return u
	}
	return strings.ReplaceAll(u, "apikey="+url.QueryEscape(f.cfg.APIKey), "apikey=REDACTED")
}

// Fetch performs a single GET for artist and decodes the response body.
func (f *Fetcher) Fetch(ctx context.Context, artist string) (*models.DiscoveryResponse, error) {
	u := f.EventsURL(artist)
	f.logger.Debug("DISCOVERY", fmt.Sprintf("Fetching events: %s", f.redact(u)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery service error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			f.logger.Error("DISCOVERY", fmt.Sprintf("Failed to close discovery response body: %v", err))
		}
	}(resp.Body)
	f.logger.LogAPI(http.MethodGet, eventsPath, resp.Status, time.Since(start).Truncate(time.Millisecond).String())

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var body models.DiscoveryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode discovery response: %w", err)
	}
	return &body, nil
}

// GetArtistEvents fetches and normalizes the events for artist. Any fetch
// failure is logged and yields an empty result.
func (f *Fetcher) GetArtistEvents(ctx context.Context, artist string) []models.Event {
	body, err := f.Fetch(ctx, artist)
	if err != nil {
		// url.Error embeds the request URL, key included
		f.logger.Error("DISCOVERY", f.redact(fmt.Sprintf("Error fetching events for %s: %v", artist, err)))
		return []models.Event{}
	}
	events := ParseEvents(body, f.logger)
	f.logger.LogSearch(artist, fmt.Sprintf("%d event(s) parsed", len(events)))
	return events
}
