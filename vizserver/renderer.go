package vizserver

import (
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	commontypes "github.com/bytearena/gridarena/common/types"
	"github.com/bytearena/gridarena/game/state"
	"github.com/bytearena/gridarena/vizserver/types"
)

var postTimeout = 5 * time.Millisecond

// Renderer publishes every frame of a game to its watchers.
type Renderer struct {
	game *types.VizGame

	lock    sync.Mutex
	lastErr error
}

func NewRenderer(game *types.VizGame) *Renderer {
	return &Renderer{game: game}
}

// Display never fails: frames nobody can receive in time are dropped.
func (r *Renderer) Display(ws *state.WorldState) error {
	if r.game.GetNumberWatchers() == 0 {
		return nil
	}

	err := notify.PostTimeout(types.EventFrame, commontypes.MakeVizMessage(r.game.GetId(), ws), postTimeout)

	r.lock.Lock()
	r.lastErr = err
	r.lock.Unlock()

	return nil
}

// Healthy reports whether the last frame reached every watcher.
func (r *Renderer) Healthy() (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.lastErr == nil, r.lastErr
}

func (r *Renderer) Stop() {
	_ = notify.PostTimeout(types.EventEnd, r.game.GetId(), postTimeout)
}
