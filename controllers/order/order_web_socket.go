package orderControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/freshmarket-io/marketplace-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeed pushes newly placed orders to connected websocket clients.
type OrderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{clients: make(map[*websocket.Conn]bool)}
}

// GET /orders/ws
func (f *OrderFeed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		defer func() {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			conn.Close()
		}()

		// Drain until the client goes away; the feed is write-only.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// Publish fans the order out to every connected client. Dead connections
// are dropped on write failure.
func (f *OrderFeed) Publish(order *models.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteJSON(order); err != nil {
			log.Debug().Err(err).Msg("dropping websocket client")
			delete(f.clients, conn)
			conn.Close()
		}
	}
}
