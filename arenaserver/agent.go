package arenaserver

import (
	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
)

//go:generate go tool mockgen -destination=mocks/mocks.go -package=mocks . Agent,Renderer

type Role int

const (
	RolePlayer Role = iota
	RoleObserver
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleObserver:
		return "observer"
	}

	return "unknown"
}

// Agent is a decision maker driven by the simulation: every tick it is given a percept, then
// asked for one action. See and SelectAction of one agent are never called concurrently.
type Agent interface {
	GetRole() Role
	GetPlayerID() arenamap.PlayerID // empty for observers
	See(percept Percept)
	SelectAction() action.Action
}
