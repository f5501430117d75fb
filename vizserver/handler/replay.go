package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bytearena/gridarena/common/replay"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/vizserver/types"
	"github.com/gorilla/mux"
)

// ReplayWebsocket streams a recorded game of recordDir at tps frames per second.
func ReplayWebsocket(recordDir string, tps int) func(w http.ResponseWriter, r *http.Request) {
	interval := time.Second / time.Duration(tps)

	return func(w http.ResponseWriter, r *http.Request) {
		recordFile := filepath.Join(recordDir, filepath.Base(mux.Vars(r)["recordId"]))

		if _, err := os.Stat(recordFile); os.IsNotExist(err) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		replayer, err := replay.NewReplayer(recordFile)
		if err != nil {
			http.Error(w, "could not read record", http.StatusInternalServerError)
			return
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.Debug("viz-server", "upgrade: "+err.Error())
			return
		}
		defer c.Close()

		watcher := types.NewWatcher(c)
		metadata := replayer.GetMetadata()

		if err := watcher.WriteJSON(types.MakeInitMessage(metadata.Id, metadata.Map, metadata.Specs)); err != nil {
			return
		}

		clientclosedsocket := listenClose(c)
		ctx := r.Context()

		for frame := range replayer.Play(ctx, interval) {
			select {
			case <-clientclosedsocket:
				return
			default:
			}

			if err := watcher.WriteJSON(types.MakeFrameMessage(frame)); err != nil {
				return
			}
		}

		watcher.WriteJSON(types.MakeEndMessage(metadata.Id))
	}
}
