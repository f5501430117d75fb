package handler

import (
	"net/http"

	notify "github.com/bitly/go-notify"
	commontypes "github.com/bytearena/gridarena/common/types"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/vizserver/types"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// frames a slow watcher may lag behind before frames get dropped
const watcherBuffer = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// listenClose returns a channel closed when the client goes away. Reading is mandatory to
// notice a close initiated client side.
func listenClose(c *websocket.Conn) chan struct{} {
	closed := make(chan struct{})

	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return closed
}

// Websocket streams the frames of a running game, then an end message.
func Websocket(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		game := games.Get(mux.Vars(r)["id"])
		if game == nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.Debug("viz-server", "upgrade: "+err.Error())
			return
		}

		watcher := types.NewWatcher(c)

		// subscribe before the init message, so that no frame is missed once it is received
		vizmsgchan := make(chan interface{}, watcherBuffer)
		notify.Start(types.EventFrame, vizmsgchan)
		notify.Start(types.EventEnd, vizmsgchan)

		defer func() {
			notify.Stop(types.EventFrame, vizmsgchan)
			notify.Stop(types.EventEnd, vizmsgchan)
			game.RemoveWatcher(watcher.GetId())
			c.Close()
			utils.Debug("viz-server", "watcher "+watcher.GetId()+" left game "+game.GetId())
		}()

		if err := game.SetWatcher(watcher); err != nil {
			return
		}

		clientclosedsocket := listenClose(c)

		for {
			select {
			case <-clientclosedsocket:
				return
			case vizmsg := <-vizmsgchan:
				switch msg := vizmsg.(type) {
				case commontypes.VizMessage:
					if msg.GameID != game.GetId() {
						continue
					}

					if err := watcher.WriteJSON(types.MakeFrameMessage(msg)); err != nil {
						return
					}
				case string:
					if msg != game.GetId() {
						continue
					}

					watcher.WriteJSON(types.MakeEndMessage(msg))
					return
				}
			}
		}
	}
}
