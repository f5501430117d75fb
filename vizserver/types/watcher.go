package types

import (
	"sync"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// Watcher is one websocket client. Writes are serialized.
type Watcher struct {
	id   string
	conn *websocket.Conn
	lock sync.Mutex
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:   uuid.NewV4().String(),
		conn: conn,
	}
}

func (watcher *Watcher) GetId() string {
	return watcher.id
}

func (watcher *Watcher) WriteJSON(msg interface{}) error {
	watcher.lock.Lock()
	defer watcher.lock.Unlock()

	return watcher.conn.WriteJSON(msg)
}
