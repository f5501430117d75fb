package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bytearena/gridarena/vizserver/types"
	"github.com/gorilla/mux"
)

// Game describes one game as JSON, map included.
func Game(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		game := games.Get(mux.Vars(r)["id"])
		if game == nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		description := describe(game)
		description.Rows = game.GetMap().Rows

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(description)
	}
}
