package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

type navigateRequest struct {
	Location string `json:"location"`
}

type navigateResponse struct {
	Location string `json:"location"`
	Route    string `json:"route,omitempty"`
	Path     string `json:"path,omitempty"`
	HTML     string `json:"html,omitempty"`
	Error    string `json:"error,omitempty"`
}

// navigate upgrades to a websocket and answers each {"location": ...}
// message with the composed view for that location. Each session has its
// own token bucket; messages beyond it are answered with an error. The
// session ends when the client closes the connection or a read fails.
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	logger := h.logger.With("session", uuid.NewString())
	logger.Debug("navigation session opened")

	h.metrics.sessions.Inc()
	defer h.metrics.sessions.Dec()

	limiter := rate.NewLimiter(rate.Limit(h.socket.RateLimit), h.socket.Burst)

	if limit := h.socket.MaxMessageSizeBytes(); limit > 0 {
		conn.SetReadLimit(limit)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("navigation session closed")
			} else {
				logger.Warn("read navigation message", "error", err)
			}
			return
		}

		var resp navigateResponse
		if limiter.Allow() {
			resp = h.navigateTo(data)
		} else {
			resp = navigateResponse{Error: errRateLimited.Error()}
		}

		if timeout := h.socket.WriteTimeoutDuration(); timeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(timeout))
		}
		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn("write navigation response", "error", err)
			return
		}
	}
}

func (h *Handler) navigateTo(data []byte) navigateResponse {
	var req navigateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return navigateResponse{Error: "invalid message: " + err.Error()}
	}
	if req.Location == "" {
		return navigateResponse{Error: errEmptyLocation.Error()}
	}

	content, m, err := h.compose(req.Location, transportSocket)
	if err != nil {
		if MapHTTPStatus(err) == http.StatusInternalServerError {
			h.logger.Error("compose view", "location", req.Location, "error", err)
		}
		return navigateResponse{Location: req.Location, Error: err.Error()}
	}

	return navigateResponse{
		Location: req.Location,
		Route:    m.Name(),
		Path:     m.Path,
		HTML:     string(content),
	}
}
