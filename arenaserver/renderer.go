package arenaserver

import (
	"github.com/bytearena/gridarena/game/state"
	"github.com/pkg/errors"
)

// ErrStopRequested is returned by a Renderer to end the simulation cleanly.
var ErrStopRequested = errors.New("stop requested")

// Renderer consumes the world state once per tick. It must not mutate it.
// Stop is called exactly once, when the simulation ends for any reason.
type Renderer interface {
	Display(ws *state.WorldState) error
	Stop()
}

type NullRenderer struct{}

func (NullRenderer) Display(ws *state.WorldState) error { return nil }
func (NullRenderer) Stop()                              {}

// MultiRenderer displays to every renderer, in order. A stop request from one of them is
// reported once all of them have displayed the frame.
type MultiRenderer []Renderer

func (renderers MultiRenderer) Display(ws *state.WorldState) error {
	var stop error

	for _, renderer := range renderers {
		err := renderer.Display(ws)
		if err == nil {
			continue
		}

		if errors.Cause(err) == ErrStopRequested {
			stop = err
			continue
		}

		return err
	}

	return stop
}

func (renderers MultiRenderer) Stop() {
	for _, renderer := range renderers {
		renderer.Stop()
	}
}
