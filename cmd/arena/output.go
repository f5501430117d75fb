package main

import (
	"fmt"
	"io"

	"github.com/ttacon/chalk"

	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/game/state"
)

func printSummary(w io.Writer, summary arenaserver.Summary, kills []state.Kill) {
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "=== game over at tick %d\n", summary.Tick)

	for _, team := range summary.Teams {
		line := fmt.Sprintf("    team %s: %d/%d alive, %d kills", team.Team, team.Alive, team.Players, team.Kills)
		if team.Team == summary.Winner {
			line = chalk.Green.Color(line + " (winner)")
		} else if team.Alive == 0 {
			line = chalk.Red.Color(line)
		}
		fmt.Fprintln(w, line)
	}

	if summary.Winner == "" {
		fmt.Fprintln(w, chalk.Yellow.Color("    no winner"))
	}

	for _, kill := range kills {
		fmt.Fprintf(w, "    tick %4d: %s killed %s\n", kill.Tick, kill.Shooter, kill.Victim)
	}
}
