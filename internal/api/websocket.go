package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/cirko-dev/cirko/internal/logging"
	"github.com/cirko-dev/cirko/internal/validation"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		if len(ServerConfig.AllowedOrigins) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		for _, allowed := range ServerConfig.AllowedOrigins {
			if origin == allowed {
				return true
			}
		}
		return false
	},
}

// WSRequest is a single conversion request sent over the socket.
type WSRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction,omitempty"`
}

// WSResult is the converted text sent back for each request.
type WSResult struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
	Error     string `json:"error,omitempty"`
}

// handleWebSocket upgrades the connection and converts each incoming
// JSON frame, echoing the result back. Editors use this for a live
// preview while typing.
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err, "remote_addr", r.RemoteAddr)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(validation.MaxInputSize)

	logging.WebSocketEvent("client_connected", "remote_addr", r.RemoteAddr)

	for {
		var req WSRequest
		if err := conn.ReadJSON(&req); err != nil {
			logging.WebSocketEvent("client_disconnected", "remote_addr", r.RemoteAddr)
			return
		}

		switch req.Direction {
		case "", DirectionLatin, DirectionCyrillic:
		default:
			if err := conn.WriteJSON(WSResult{Error: "invalid direction"}); err != nil {
				return
			}
			continue
		}

		result, direction, _ := convertText(req.Text, req.Direction)
		if err := conn.WriteJSON(WSResult{Text: result, Direction: direction}); err != nil {
			return
		}
	}
}
