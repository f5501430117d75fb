package state

import (
	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/perception"
)

type AgentStats struct {
	IsAlive       bool                     `json:"alive"`
	ShootingDelay int                      `json:"shootingdelay"` // ticks before the agent may shoot again
	Kills         []arenamap.PlayerID      `json:"kills"`
	Placement     arenamap.PlayerPlacement `json:"placement"`
	Rays          []perception.Ray         `json:"rays"`
}

func NewAgentStats(placement arenamap.PlayerPlacement) *AgentStats {
	return &AgentStats{
		IsAlive:       true,
		ShootingDelay: 0,
		Kills:         make([]arenamap.PlayerID, 0),
		Placement:     placement,
		Rays:          make([]perception.Ray, 0),
	}
}

func (stats *AgentStats) GetTeam() string {
	return stats.Placement.Team
}

func (stats *AgentStats) GetPosition() vector.Vector2 {
	return stats.Placement.Position
}

func (stats *AgentStats) GetDirection() (vector.Vector2, bool) {
	return stats.Placement.GetDirection()
}

// CanShoot reports whether the agent is alive, faces somewhere and is not cooling down.
func (stats *AgentStats) CanShoot() bool {
	_, hasDirection := stats.GetDirection()
	return stats.IsAlive && hasDirection && stats.ShootingDelay == 0
}

// Clone returns a copy sharing nothing mutable with stats.
func (stats *AgentStats) Clone() AgentStats {
	clone := *stats

	clone.Kills = make([]arenamap.PlayerID, len(stats.Kills))
	copy(clone.Kills, stats.Kills)

	clone.Rays = make([]perception.Ray, len(stats.Rays))
	copy(clone.Rays, stats.Rays)

	return clone
}

type PendingShot struct {
	PlayerID       arenamap.PlayerID `json:"shooter"`
	Origin         vector.Vector2    `json:"origin"`
	Direction      vector.Vector2    `json:"direction"`
	RemainingTicks int               `json:"remainingticks"`
}

// Kill is a projectile hit resolved during Advance.
type Kill struct {
	Tick    int               `json:"tick"`
	Shooter arenamap.PlayerID `json:"shooter"`
	Victim  arenamap.PlayerID `json:"victim"`
}
