package arenaserver

import "github.com/pkg/errors"

type TearDownCallback func() error

type Status int

const (
	StatusRunning Status = iota
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusComplete:
		return "complete"
	}

	return "unknown"
}

var (
	ErrUnknownRole        = errors.New("unknown agent role")
	ErrUnknownPlayer      = errors.New("agent is not a player of this arena")
	ErrNoDecision         = errors.New("agent returned no action")
	ErrSimulationComplete = errors.New("simulation is complete")
)
