package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"user-hub/internal/domain"
)

// AlbumGateway calls the external albums collaborator.
// Implements domain.AlbumFetcher.
type AlbumGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewAlbumGateway creates an albums gateway with tuned HTTP transport.
func NewAlbumGateway(baseURL string, timeout time.Duration) *AlbumGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &AlbumGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// FetchAlbums lists the albums owned by userID, forwarding the caller's
// Authorization header so the collaborator applies its own authorization.
// Client-class responses map to domain.ErrAlbumsNotFound, server-class and
// transport failures to domain.ErrAlbumServiceUnavailable. The request is
// bound to ctx, so cancelling the parent read cancels this call.
func (g *AlbumGateway) FetchAlbums(ctx context.Context, userID, authorization string) ([]domain.Album, error) {
	endpoint := fmt.Sprintf("%s/albums?userId=%s", g.baseURL, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAlbumServiceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAlbumServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", domain.ErrAlbumsNotFound, resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", domain.ErrAlbumServiceUnavailable, resp.StatusCode)
	}

	var albums []domain.Album
	if err := json.NewDecoder(resp.Body).Decode(&albums); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAlbumServiceUnavailable, err)
	}

	return albums, nil
}
