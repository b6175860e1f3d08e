package services

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// RefreshService pushes a "calendar changed" notice to every open view so
// browsers re-render without polling.
type RefreshService struct {
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[*websocket.Conn]struct{}
}

type refreshMessage struct {
	Type string `json:"type"`
}

func (service *RefreshService) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(
			w,
			r,
			//nolint:exhaustruct //other fields are optional
			&websocket.AcceptOptions{InsecureSkipVerify: true},
		)
		if err != nil {
			service.logger.Error("websocket accept failed", logging.ErrAttr(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "closing connection")

		service.subscribe(conn)
		defer service.unsubscribe(conn)

		// The client never sends anything meaningful; block until it
		// goes away.
		for {
			var discarded map[string]any
			if err = wsjson.Read(r.Context(), conn, &discarded); err != nil {
				return
			}
		}
	}
}

// Broadcast notifies all subscribers; unreachable connections are dropped.
func (service *RefreshService) Broadcast(ctx context.Context) {
	service.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(service.subscribers))
	for conn := range service.subscribers {
		conns = append(conns, conn)
	}
	service.mu.Unlock()

	for _, conn := range conns {
		err := wsjson.Write(ctx, conn, refreshMessage{Type: "refresh"})
		if err != nil {
			service.unsubscribe(conn)
		}
	}
}

func (service *RefreshService) subscribe(conn *websocket.Conn) {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.subscribers[conn] = struct{}{}
}

func (service *RefreshService) unsubscribe(conn *websocket.Conn) {
	service.mu.Lock()
	defer service.mu.Unlock()

	delete(service.subscribers, conn)
}
