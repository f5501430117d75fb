package main

import (
	"io"

	"github.com/cheggaaa/pb"

	"github.com/bytearena/gridarena/game/state"
)

// progressRenderer shows the elapsed ticks of a headless game.
type progressRenderer struct {
	bar *pb.ProgressBar
}

func newProgressRenderer(maxTicks int, out io.Writer) *progressRenderer {
	if maxTicks < 1 {
		maxTicks = 1
	}

	bar := pb.New(maxTicks).Prefix("ticks ")
	bar.Output = out
	bar.ShowTimeLeft = false
	bar.SetWidth(80)
	bar.Start()

	return &progressRenderer{bar: bar}
}

func (p *progressRenderer) Display(ws *state.WorldState) error {
	p.bar.Set(ws.Tick)
	return nil
}

func (p *progressRenderer) Stop() {
	p.bar.Finish()
}
