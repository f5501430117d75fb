package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/bytearena/gridarena/arenaserver"
	commontypes "github.com/bytearena/gridarena/common/types"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/state"
	"github.com/gdamore/tcell"
)

var teamColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorDodgerBlue,
	tcell.ColorLime,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
}

// Renderer draws frames in a terminal. Keys: p toggles pause, q or Esc stops the simulation.
type Renderer struct {
	screen     tcell.Screen
	rows       []string
	frameDelay time.Duration

	teams map[string]tcell.Color

	events chan tcell.Event
	quit   chan struct{}

	paused        bool
	stopRequested bool
	stopOnce      sync.Once
}

// key presses buffered between two frames
const eventBuffer = 32

// NewRenderer initializes screen; it is finalized by Stop.
func NewRenderer(screen tcell.Screen, arenaMap *arenamap.MapContainer, frameDelay time.Duration) (*Renderer, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.Clear()

	r := &Renderer{
		screen:     screen,
		rows:       arenaMap.Rows,
		frameDelay: frameDelay,
		teams:      make(map[string]tcell.Color),
		events:     make(chan tcell.Event, eventBuffer),
		quit:       make(chan struct{}),
	}

	go r.pollEvents()

	return r, nil
}

// pollEvents forwards screen events until the screen is finalized.
func (r *Renderer) pollEvents() {
	for {
		ev := r.screen.PollEvent()

		select {
		case r.events <- ev:
		case <-r.quit:
			return
		}

		if ev == nil {
			return
		}
	}
}

func (r *Renderer) drainEvents() {
	for {
		select {
		case ev := <-r.events:
			r.handleEvent(ev)
		default:
			return
		}
	}
}

func (r *Renderer) Display(ws *state.WorldState) error {
	return r.Draw(commontypes.MakeVizMessage("", ws))
}

// Draw shows frame, then blocks while the view is paused.
func (r *Renderer) Draw(frame commontypes.VizMessage) error {
	r.drainEvents()

	r.draw(frame)

	for r.paused && !r.stopRequested {
		select {
		case ev := <-r.events:
			r.handleEvent(ev)
		case <-r.quit:
			return arenaserver.ErrStopRequested
		}
		r.drawStatus(frame)
	}

	if r.stopRequested {
		return arenaserver.ErrStopRequested
	}

	if r.frameDelay > 0 {
		time.Sleep(r.frameDelay)
	}

	return nil
}

func (r *Renderer) Stop() {
	r.stopOnce.Do(func() {
		close(r.quit)
		r.screen.Fini()
	})
}

func (r *Renderer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		// screen finalized
		r.stopRequested = true
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			r.stopRequested = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			r.stopRequested = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
			r.paused = !r.paused
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
}

func (r *Renderer) teamColor(team string) tcell.Color {
	color, ok := r.teams[team]
	if !ok {
		color = teamColors[len(r.teams)%len(teamColors)]
		r.teams[team] = color
	}

	return color
}

func teamRune(team string) rune {
	for _, c := range team {
		return c
	}

	return '@'
}

func (r *Renderer) draw(frame commontypes.VizMessage) {
	r.screen.Clear()

	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y, row := range r.rows {
		for x, cell := range []rune(row) {
			if cell == arenamap.WallCell {
				r.screen.SetContent(x, y, '#', nil, wall)
			}
		}
	}

	for _, object := range frame.Objects {
		x, y := arenamap.CellOf(object.Position)
		style := tcell.StyleDefault.Foreground(r.teamColor(object.Team))

		switch {
		case object.Type == commontypes.VizObjectType.Projectile:
			r.screen.SetContent(x, y, '*', nil, style)
		case !object.Alive:
			r.screen.SetContent(x, y, 'x', nil, style.Dim(true))
		default:
			r.screen.SetContent(x, y, teamRune(object.Team), nil, style.Bold(true))
		}
	}

	r.drawStatus(frame)
}

func (r *Renderer) drawStatus(frame commontypes.VizMessage) {
	alive := make(map[string]int)
	order := make([]string, 0)
	for _, agent := range frame.Agents() {
		if _, seen := alive[agent.Team]; !seen {
			order = append(order, agent.Team)
			alive[agent.Team] = 0
		}
		if agent.Alive {
			alive[agent.Team]++
		}
	}

	status := fmt.Sprintf("tick %d", frame.Tick)
	for _, team := range order {
		status += fmt.Sprintf("  %s:%d", team, alive[team])
	}
	if r.paused {
		status += "  [paused]"
	}

	y := len(r.rows)
	width, _ := r.screen.Size()
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	for x, c := range []rune(status) {
		r.screen.SetContent(x, y, c, nil, tcell.StyleDefault)
	}

	r.screen.Show()
}
