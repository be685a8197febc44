package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"user-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval keeps idle stream connections alive through proxies.
const heartbeatInterval = 10 * time.Second

// StreamHandler serves GET /users/stream as a server-sent event stream of
// newly created users.
type StreamHandler struct {
	stream *usecase.StreamUsers
	logger *slog.Logger
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(stream *usecase.StreamUsers, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{stream: stream, logger: logger}
}

// Handle subscribes the connection to the user-created broadcast and writes
// one `data:` frame per event, in publish order, until the client
// disconnects. Disconnecting releases the subscription.
func (h *StreamHandler) Handle(c echo.Context) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	w := c.Response().Writer
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("response writer does not support flushing")
		return echo.NewHTTPError(http.StatusInternalServerError, "streaming not supported")
	}

	events, cancel := h.stream.Execute()
	defer cancel()

	ctx := c.Request().Context()
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-heartbeat.C:
			if _, err := w.Write([]byte(": heartbeat\n\n")); err != nil {
				h.logger.DebugContext(ctx, "stream client disconnected during heartbeat", "error", err)
				return nil
			}
			flusher.Flush()

		case user, open := <-events:
			if !open {
				return nil
			}

			payload, err := json.Marshal(toUserResponse(&user))
			if err != nil {
				h.logger.ErrorContext(ctx, "failed to marshal stream event", "user_id", user.ID, "error", err)
				continue
			}
			if _, err := w.Write(append(append([]byte("data: "), payload...), '\n', '\n')); err != nil {
				h.logger.DebugContext(ctx, "stream client disconnected", "error", err)
				return nil
			}
			flusher.Flush()
		}
	}
}
