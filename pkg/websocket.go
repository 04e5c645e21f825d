package wifictl

import (
	"context"
	"log"
	"sync"

	"golang.org/x/net/websocket"
)

// WSRelay fans daemon Change events out to every connected websocket
// client. Clients join through the handler; the run loop owns the client
// list so no locking is needed around it.
type WSRelay struct {
	changes chan Change
	joins   chan *wsClient
	clients []*wsClient
}

func NewWSRelay(changes chan Change) *WSRelay {
	return &WSRelay{
		changes: changes,
		joins:   make(chan *wsClient),
	}
}

func (t *WSRelay) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		started <- true
		for {
			select {
			case <-stop:
				for _, c := range t.clients {
					c.close()
				}
				stopped <- true
				return
			case c := <-t.joins:
				t.clients = append(t.clients, c)
			case change := <-t.changes:
				t.broadcast(change)
			}
		}
	}()
	return nil
}

// broadcast sends one change to every client and drops clients whose
// connection has gone away.
func (t *WSRelay) broadcast(change Change) {
	alive := t.clients[:0]
	for _, c := range t.clients {
		if err := websocket.JSON.Send(c.conn, change); err != nil {
			log.Printf("dropping websocket client: %v", err)
			c.close()
			continue
		}
		alive = append(alive, c)
	}
	t.clients = alive
}

// GetWSHandler returns the /ws endpoint handler. Each client gets one
// initial payload on join and then the live change stream.
func (t *WSRelay) GetWSHandler(initialPayloader func() any) *websocket.Server {
	return &websocket.Server{
		Handler: func(ws *websocket.Conn) {
			c := &wsClient{conn: ws, stop: make(chan bool)}
			t.joins <- c

			if err := websocket.JSON.Send(ws, initialPayloader()); err != nil {
				log.Printf("failed to send initial payload: %v", err)
			}
			<-c.stop // hold the connection open until the relay drops it
		},
		Config: websocket.Config{Origin: nil},
	}
}

type wsClient struct {
	conn *websocket.Conn
	stop chan bool
	once sync.Once
}

func (t *wsClient) close() {
	t.once.Do(func() {
		close(t.stop)
	})
}
