package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"user-hub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamHandler_DeliversCreatedUsers(t *testing.T) {
	f := newFixture(t)
	server := httptest.NewServer(f.e)
	defer server.Close()

	resp, err := http.Get(server.URL + "/users/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	// The subscription registers after the request reaches the handler, so
	// keep publishing until the reader observes a frame.
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.hub.Publish(domain.User{ID: uuid.New(), FirstName: "Ada", Email: "ada@example.com"})
			}
		}
	}()

	frame := readEventFrame(t, resp)
	cancel()

	var event userResponse
	require.NoError(t, json.Unmarshal([]byte(frame), &event))
	assert.Equal(t, "ada@example.com", event.Email)
	assert.Equal(t, "Ada", event.FirstName)
}

func TestStreamHandler_DisconnectReleasesSubscription(t *testing.T) {
	f := newFixture(t)
	server := httptest.NewServer(f.e)
	defer server.Close()

	resp, err := http.Get(server.URL + "/users/stream")
	require.NoError(t, err)
	resp.Body.Close()

	// After the client goes away the hub must not block publishers.
	done := make(chan struct{})
	go func() {
		for range 100 {
			f.hub.Publish(domain.User{ID: uuid.New()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked after client disconnect")
	}
}

func readEventFrame(t *testing.T, resp *http.Response) string {
	t.Helper()

	deadline := time.After(5 * time.Second)
	frames := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "data: ") {
				frames <- strings.TrimPrefix(line, "data: ")
				return
			}
		}
	}()

	select {
	case frame := <-frames:
		return frame
	case <-deadline:
		t.Fatal("no event frame received")
		return ""
	}
}
