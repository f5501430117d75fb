package arenaserver

import (
	"strconv"

	"github.com/bytearena/gridarena/game/state"
)

type TeamSummary struct {
	Team    string `json:"team"`
	Players int    `json:"players"`
	Alive   int    `json:"alive"`
	Kills   int    `json:"kills"`
}

type Summary struct {
	Tick   int           `json:"tick"`
	Teams  []TeamSummary `json:"teams"`
	Winner string        `json:"winner"` // empty when zero or several teams survive
}

// Summarize tallies players, survivors and kills per team, in spawn order.
func Summarize(ws *state.WorldState) Summary {
	summary := Summary{
		Tick:  ws.Tick,
		Teams: make([]TeamSummary, 0),
	}

	index := make(map[string]int)
	for _, id := range ws.GetPlayerIDs() {
		stats := ws.AgentStats[id]
		team := stats.GetTeam()

		i, ok := index[team]
		if !ok {
			i = len(summary.Teams)
			index[team] = i
			summary.Teams = append(summary.Teams, TeamSummary{Team: team})
		}

		summary.Teams[i].Players++
		summary.Teams[i].Kills += len(stats.Kills)
		if stats.IsAlive {
			summary.Teams[i].Alive++
		}
	}

	if alive := ws.AliveTeams(); len(alive) == 1 {
		summary.Winner = alive[0]
	}

	return summary
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
