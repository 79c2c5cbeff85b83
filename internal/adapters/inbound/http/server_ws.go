package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/common"
	"github.com/gorilla/websocket"
)

const (
	PROCESSING_NOTICE  = "Please wait while I process your request...\n\n"
	WORDS_PER_CHUNK    = 5
	WS_READ_LIMIT      = 1 << 20
	WS_INVALID_MESSAGE = "invalid message: expected {\"type\":\"message\",\"content\":\"...\"}"
)

// WebSocketChat runs conversation turns over a WebSocket. Each message frame gets a
// message_start, the processing notice, an empty chunk, the reply in chunks of
// WORDS_PER_CHUNK words and a message_end.
func (api BridgeServer) WebSocketChat(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: api.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		api.Logger.Printf("BridgeServer: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close() //nolint:errcheck
	conn.SetReadLimit(WS_READ_LIMIT)

	ctx := r.Context()
	for {
		var frame WSFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				api.Logger.Printf("BridgeServer: websocket read failed: %v", err)
			}
			if _, ok := err.(*websocket.CloseError); ok || ctx.Err() != nil {
				return
			}
			if err := conn.WriteJSON(errorFrame(WS_INVALID_MESSAGE)); err != nil {
				return
			}
			continue
		}
		if frame.Type != FRAME_MESSAGE {
			continue
		}

		content := ""
		if frame.Content != nil {
			content = *frame.Content
		}
		if err := api.streamReply(conn, func() string {
			return api.ChatUseCase.Execute(ctx, content)
		}); err != nil {
			api.Logger.Printf("BridgeServer: websocket write failed: %v", err)
			return
		}
	}
}

func (api BridgeServer) streamReply(conn *websocket.Conn, execute func() string) error {
	if err := conn.WriteJSON(WSFrame{Type: FRAME_MESSAGE_START}); err != nil {
		return err
	}
	if err := conn.WriteJSON(chunkFrame(PROCESSING_NOTICE)); err != nil {
		return err
	}

	reply := execute()

	if err := conn.WriteJSON(chunkFrame("")); err != nil {
		return err
	}
	for _, chunk := range chunkWords(reply, WORDS_PER_CHUNK) {
		if err := conn.WriteJSON(chunkFrame(chunk)); err != nil {
			return err
		}
	}
	return conn.WriteJSON(WSFrame{Type: FRAME_MESSAGE_END})
}

// chunkWords splits text on whitespace into groups of n words, each followed by a space.
func chunkWords(text string, n int) []string {
	words := strings.Fields(text)
	chunks := make([]string, 0, (len(words)+n-1)/n)
	for chunk := range slices.Chunk(words, n) {
		chunks = append(chunks, strings.Join(chunk, " ")+" ")
	}
	return chunks
}

func chunkFrame(content string) WSFrame {
	return WSFrame{Type: FRAME_MESSAGE_CHUNK, Content: common.Ptr(content)}
}

func errorFrame(content string) WSFrame {
	return WSFrame{Type: FRAME_ERROR, Content: common.Ptr(content)}
}

// checkOrigin accepts same-host requests, requests without an Origin header and the CORS origins.
func (api BridgeServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if strings.TrimPrefix(strings.TrimPrefix(origin, "http://"), "https://") == r.Host {
		return true
	}
	return slices.Contains(api.allowedOrigins(), origin) || slices.Contains(api.allowedOrigins(), "*")
}
