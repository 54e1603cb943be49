// Package connectionhub keeps the live admin dashboard connections and
// broadcasts submission events to all of them.
package connectionhub

import (
	"sync"

	wsmodels "kridavista-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
)

type Provider interface {
	AddClient(clientID string, conn *websocket.Conn)
	DeleteClient(clientID string)
	Broadcast(msg wsmodels.ServerMessage)
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[clientID]
}

func (i *impl) AddClient(clientID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[clientID]
	if ok {
		oldSess.stop()
	}
	i.clients[clientID] = newSession(conn)
}

func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[clientID]
	if !ok {
		return
	}
	delete(i.clients, clientID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, sess := range i.clients {
		select {
		case sess.sendCh <- msg:
		default:
			// slow consumer, drop the event
		}
	}
}
