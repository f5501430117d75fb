package arenaserver

import (
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/state"
)

const (
	EventKill     = "arena:kill"
	EventComplete = "arena:complete"
	EventStopped  = "arena:stopped"
)

var eventTimeout = 10 * time.Millisecond

// postEvent notifies subscribers without ever blocking the tick loop for long.
// Events without subscribers are dropped.
func postEvent(event string, data interface{}) {
	_ = notify.PostTimeout(event, data, eventTimeout)
}

func (s *Simulation) onKills(kills []state.Kill) {
	s.killCounter.Add(len(kills))

	for _, kill := range kills {
		s.kills = append(s.kills, kill)

		victim := s.state.AgentStats[kill.Victim]
		utils.DebugWithContext("arena", "Agent "+string(kill.Shooter)+" killed agent "+string(kill.Victim), utils.Context{
			"tick":       kill.Tick,
			"victimteam": victim.GetTeam(),
		})

		postEvent(EventKill, kill)
	}
}

func (s *Simulation) onComplete() {
	summary := Summarize(s.state)

	message := "Simulation complete at tick " + itoa(s.state.Tick)
	if summary.Winner != "" {
		message += ", team " + summary.Winner + " wins"
	} else {
		message += ", no winner"
	}

	utils.Debug("arena", message)
	postEvent(EventComplete, summary)
}
