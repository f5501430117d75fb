package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell"
	"github.com/pkg/errors"

	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/common/replay"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/vizserver/terminal"
)

func replayAction(record string, tps int) error {
	if record == "" {
		return errors.New("no record given; use --record")
	}

	replayer, err := replay.NewReplayer(record)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "could not open terminal")
	}

	view, err := terminal.NewRenderer(screen, replayer.GetMetadata().Map, 0)
	if err != nil {
		return errors.Wrap(err, "could not open terminal")
	}
	defer view.Stop()

	previous := utils.SetDebugOutput(io.Discard)
	defer utils.SetDebugOutput(previous)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for frame := range replayer.Play(ctx, frameDelay(tps)) {
		if err := view.Draw(frame); err != nil {
			if errors.Cause(err) == arenaserver.ErrStopRequested {
				return nil
			}
			return err
		}
	}

	return nil
}
