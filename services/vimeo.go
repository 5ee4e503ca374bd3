package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// DefaultOEmbedEndpoint is Vimeo's public oEmbed lookup. No authentication
// is needed for public videos.
const DefaultOEmbedEndpoint = "https://vimeo.com/api/oembed.json"

const fallbackDuration = 120

// VideoMetadata is the display metadata for one testimonial video, resolved
// from oEmbed or from the fallback chain.
type VideoMetadata struct {
	VimeoID      string   `json:"vimeoId"`
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Duration     int      `json:"duration"`
	Source       string   `json:"source"`
	FallbackURLs []string `json:"fallbackUrls"`
	Views        int64    `json:"views"`
}

// FormatDuration renders a duration in seconds as m:ss for the thumbnail badge.
func (m VideoMetadata) FormatDuration() string {
	return fmt.Sprintf("%d:%02d", m.Duration/60, m.Duration%60)
}

type oEmbedResponse struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int    `json:"duration"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// VimeoClient looks up public video metadata via oEmbed.
type VimeoClient struct {
	httpClient *http.Client
	endpoint   string
}

func NewVimeoClient() *VimeoClient {
	return &VimeoClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   DefaultOEmbedEndpoint,
	}
}

// NewVimeoClientWithEndpoint points the client at a custom oEmbed endpoint.
// Used in tests.
func NewVimeoClientWithEndpoint(endpoint string, httpClient *http.Client) *VimeoClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &VimeoClient{httpClient: httpClient, endpoint: endpoint}
}

// DerivedThumbnailURL is the static thumbnail URL derived from the video ID,
// the first fallback after an oEmbed miss.
func DerivedThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://vumbnail.com/%s.jpg", videoID)
}

// PlaceholderURL is the local static asset serving as the terminal fallback.
func PlaceholderURL(videoID string) string {
	return fmt.Sprintf("/api/placeholder/%s", videoID)
}

func (c *VimeoClient) fetchOEmbed(ctx context.Context, videoID string) (*oEmbedResponse, error) {
	url := fmt.Sprintf("%s?url=https://vimeo.com/%s&width=640&height=360", c.endpoint, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oEmbed request failed for %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oEmbed returned status %d for %s", resp.StatusCode, videoID)
	}

	var result oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode oEmbed response for %s: %w", videoID, err)
	}
	return &result, nil
}

// Resolve returns display metadata for one video. The fallback order is a
// fixed chain: oEmbed lookup, then the derived static thumbnail URL, with
// the local placeholder asset as terminal fallback for the client.
func (c *VimeoClient) Resolve(ctx context.Context, videoID string) VideoMetadata {
	metadata := VideoMetadata{
		VimeoID:      videoID,
		Title:        fmt.Sprintf("Video %s", videoID),
		Duration:     fallbackDuration,
		FallbackURLs: []string{DerivedThumbnailURL(videoID), PlaceholderURL(videoID)},
	}

	oembed, err := c.fetchOEmbed(ctx, videoID)
	if err != nil {
		// A slow or failing lookup affects only this video.
		metadata.ThumbnailURL = DerivedThumbnailURL(videoID)
		metadata.Source = "derived"
		metadata.FallbackURLs = []string{PlaceholderURL(videoID)}
		videoMetadataTotal.WithLabelValues(metadata.Source).Inc()
		return metadata
	}

	if oembed.Title != "" {
		metadata.Title = oembed.Title
	}
	if oembed.Duration > 0 {
		metadata.Duration = oembed.Duration
	}
	if oembed.ThumbnailURL != "" {
		metadata.ThumbnailURL = oembed.ThumbnailURL
		metadata.Source = "oembed"
	} else {
		metadata.ThumbnailURL = DerivedThumbnailURL(videoID)
		metadata.Source = "derived"
		metadata.FallbackURLs = []string{PlaceholderURL(videoID)}
	}
	videoMetadataTotal.WithLabelValues(metadata.Source).Inc()
	return metadata
}

// ResolveAll resolves every ID concurrently, one independent lookup per
// video, and returns the results keyed by ID.
func (c *VimeoClient) ResolveAll(ctx context.Context, videoIDs []string) map[string]VideoMetadata {
	results := make(map[string]VideoMetadata, len(videoIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, videoID := range videoIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			metadata := c.Resolve(ctx, id)
			mu.Lock()
			results[id] = metadata
			mu.Unlock()
		}(videoID)
	}
	wg.Wait()

	return results
}
