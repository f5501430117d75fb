package types

import (
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/specs"
)

// VizGame is a game that can be watched, with its current watchers.
type VizGame struct {
	id       string
	arenaMap *arenamap.MapContainer
	specs    specs.ArenaSpecs
	pool     *WatcherMap
}

func NewVizGame(id string, arenaMap *arenamap.MapContainer, s specs.ArenaSpecs) *VizGame {
	return &VizGame{
		id:       id,
		arenaMap: arenaMap,
		specs:    s,
		pool:     NewWatcherMap(),
	}
}

func (vizgame *VizGame) GetId() string {
	return vizgame.id
}

func (vizgame *VizGame) GetMap() *arenamap.MapContainer {
	return vizgame.arenaMap
}

func (vizgame *VizGame) MakeInitMessage() VizInitMessage {
	return MakeInitMessage(vizgame.id, vizgame.arenaMap, vizgame.specs)
}

func MakeInitMessage(gameID string, arenaMap *arenamap.MapContainer, s specs.ArenaSpecs) VizInitMessage {
	return VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			GameID: gameID,
			Width:  arenaMap.Width,
			Height: arenaMap.Height,
			Rows:   arenaMap.Rows,
			Specs:  s,
		},
	}
}

// SetWatcher registers watcher and sends it the map.
func (vizgame *VizGame) SetWatcher(watcher *Watcher) error {
	vizgame.pool.Set(watcher.GetId(), watcher)

	err := watcher.WriteJSON(vizgame.MakeInitMessage())
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON; "+err.Error())
	}

	return err
}

func (vizgame *VizGame) RemoveWatcher(watcherid string) {
	vizgame.pool.Remove(watcherid)
}

func (vizgame *VizGame) GetNumberWatchers() int {
	return vizgame.pool.Size()
}
