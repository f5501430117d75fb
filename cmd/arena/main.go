package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli"

	"github.com/bytearena/gridarena/agents/player"
	"github.com/bytearena/gridarena/common/config"
	"github.com/bytearena/gridarena/common/utils"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "arena"
	app.Usage = "Tick based grid arena simulator"

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Run a game on a map",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "map", Usage: "Map file, one grid row per line; required unless set in the configuration"},
				cli.StringFlag{Name: "config", Usage: "TOML configuration file (default: " + config.DefaultFilename + " next to the executable, if any)"},
				cli.IntFlag{Name: "ticks", Usage: "Maximum number of ticks"},
				cli.Int64Flag{Name: "seed", Usage: "Random seed of the agents"},
				cli.StringSliceFlag{Name: "policy", Usage: "Policy of a team, as TEAM=POLICY; may be repeated"},
				cli.BoolFlag{Name: "moderator", Usage: "Add the moderator"},
				cli.BoolFlag{Name: "terminal", Usage: "Show the game in the terminal (p: pause, q: quit)"},
				cli.BoolFlag{Name: "progress", Usage: "Show a tick progress bar on stderr; ignored with --terminal"},
				cli.IntFlag{Name: "tps", Value: 10, Usage: "Ticks per second in the terminal"},
				cli.StringFlag{Name: "record", Usage: "Destination file for recording the game"},
				cli.StringFlag{Name: "viz", Usage: "Address of the viz server, e.g. :8080"},
				cli.BoolFlag{Name: "dump", Usage: "Dump the final state"},
				cli.BoolFlag{Name: "verbose", Usage: "Log agent messages"},
			},
			Action: func(c *cli.Context) error {
				return runAction(runOptions{
					mapFile:    c.String("map"),
					configFile: c.String("config"),
					ticks:      c.Int("ticks"),
					seed:       c.Int64("seed"),
					policies:   c.StringSlice("policy"),
					moderator:  c.Bool("moderator"),
					terminal:   c.Bool("terminal"),
					progress:   c.Bool("progress"),
					tps:        c.Int("tps"),
					record:     c.String("record"),
					viz:        c.String("viz"),
					dump:       c.Bool("dump"),
					verbose:    c.Bool("verbose"),
				})
			},
		},
		{
			Name:  "replay",
			Usage: "Replay a recorded game in the terminal",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "record", Usage: "Record archive; required"},
				cli.IntFlag{Name: "tps", Value: 10, Usage: "Ticks per second"},
			},
			Action: func(c *cli.Context) error {
				return replayAction(c.String("record"), c.Int("tps"))
			},
		},
		{
			Name:  "policies",
			Usage: "List the available player policies",
			Action: func(c *cli.Context) error {
				names := player.PolicyNames()
				sort.Strings(names)
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			},
		},
	}

	return app
}
