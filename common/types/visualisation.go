package types

import (
	"strconv"

	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/state"
)

type vizObjectType string

var VizObjectType = struct {
	Agent      vizObjectType
	Projectile vizObjectType
}{
	Agent:      vizObjectType("agent"),
	Projectile: vizObjectType("projectile"),
}

// VizMessage is one frame of a game, as streamed to watchers and written to recordings.
type VizMessage struct {
	GameID  string             `json:"gameid"`
	Tick    int                `json:"tick"`
	Objects []VizMessageObject `json:"objects"`
}

type VizMessageObject struct {
	Id            string         `json:"id"`
	Type          vizObjectType  `json:"type"`
	Team          string         `json:"team"`
	Position      vector.Vector2 `json:"position"`
	Orientation   float64        `json:"orientation"` // degrees
	Radius        float64        `json:"radius,omitempty"`
	Alive         bool           `json:"alive"`
	ShootingDelay int            `json:"shootingdelay,omitempty"`
	Kills         int            `json:"kills,omitempty"`
}

// MakeVizMessage describes ws: agents in spawn order, then projectiles.
func MakeVizMessage(gameID string, ws *state.WorldState) VizMessage {
	msg := VizMessage{
		GameID:  gameID,
		Tick:    ws.Tick,
		Objects: make([]VizMessageObject, 0, len(ws.AgentStats)+len(ws.PendingShots)),
	}

	for _, id := range ws.GetPlayerIDs() {
		stats, _ := ws.GetAgentStats(id)
		orientation := 0.0
		if direction, ok := stats.GetDirection(); ok {
			orientation = direction.AngleDeg()
		}

		msg.Objects = append(msg.Objects, VizMessageObject{
			Id:            string(id),
			Type:          VizObjectType.Agent,
			Team:          stats.GetTeam(),
			Position:      stats.GetPosition(),
			Orientation:   orientation,
			Radius:        ws.Specs.PlayerRadius(),
			Alive:         stats.IsAlive,
			ShootingDelay: stats.ShootingDelay,
			Kills:         len(stats.Kills),
		})
	}

	for i, shot := range ws.PendingShots {
		msg.Objects = append(msg.Objects, VizMessageObject{
			Id:          string(shot.PlayerID) + "/" + strconv.Itoa(i),
			Type:        VizObjectType.Projectile,
			Team:        teamOf(ws, shot.PlayerID),
			Position:    shot.Origin,
			Orientation: shot.Direction.AngleDeg(),
			Alive:       true,
		})
	}

	return msg
}

func teamOf(ws *state.WorldState, id arenamap.PlayerID) string {
	if stats, ok := ws.GetAgentStats(id); ok {
		return stats.GetTeam()
	}

	return ""
}

// Agents returns the agent objects of the frame.
func (msg VizMessage) Agents() []VizMessageObject {
	res := make([]VizMessageObject, 0, len(msg.Objects))
	for _, object := range msg.Objects {
		if object.Type == VizObjectType.Agent {
			res = append(res, object)
		}
	}

	return res
}
