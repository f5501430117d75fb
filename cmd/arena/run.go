package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/bytearena/gridarena/agents/moderator"
	"github.com/bytearena/gridarena/agents/player"
	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/common/blackboard"
	"github.com/bytearena/gridarena/common/config"
	"github.com/bytearena/gridarena/common/recording"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/state"
	"github.com/bytearena/gridarena/vizserver"
	"github.com/bytearena/gridarena/vizserver/terminal"
	"github.com/bytearena/gridarena/vizserver/types"
)

const shutdownTimeout = 5 * time.Second

type runOptions struct {
	mapFile    string
	configFile string
	ticks      int
	seed       int64
	policies   []string
	moderator  bool
	terminal   bool
	progress   bool
	tps        int
	record     string
	viz        string
	dump       bool
	verbose    bool
}

func loadConfig(opts runOptions) (config.Config, error) {
	filename := opts.configFile
	if filename == "" {
		if located, ok := config.Locate(); ok {
			filename = located
		}
	}

	cfg := config.Default()
	if filename != "" {
		var err error
		if cfg, err = config.Load(filename); err != nil {
			return cfg, err
		}
	}

	if opts.mapFile != "" {
		cfg.Simulation.Map = opts.mapFile
	}
	if opts.ticks > 0 {
		cfg.Simulation.MaxTicks = opts.ticks
	}
	if opts.seed != 0 {
		cfg.Simulation.Seed = opts.seed
	}
	if opts.moderator {
		cfg.Moderator.Enabled = true
	}
	if opts.record != "" {
		cfg.Recording.Path = opts.record
	}
	if opts.viz != "" {
		cfg.Viz.Addr = opts.viz
	}

	for _, assignment := range opts.policies {
		parts := strings.SplitN(assignment, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return cfg, errors.Errorf("invalid --policy %q, expected TEAM=POLICY", assignment)
		}
		cfg.Agents.Teams[parts[0]] = parts[1]
	}

	if cfg.Simulation.Map == "" {
		return cfg, errors.New("no map given; use --map or simulation.map")
	}

	return cfg, cfg.Validate()
}

// buildAgents drives every player with the policy of its team; the moderator comes last.
func buildAgents(cfg config.Config, ws *state.WorldState, bb *blackboard.Blackboard, seed int64) ([]arenaserver.Agent, error) {
	agents := make([]arenaserver.Agent, 0)

	for i, id := range ws.GetPlayerIDs() {
		stats, _ := ws.GetAgentStats(id)

		policy, err := player.LookupPolicy(cfg.PolicyFor(stats.GetTeam()))
		if err != nil {
			return nil, errors.Wrapf(err, "team %s", stats.GetTeam())
		}

		rng := rand.New(rand.NewSource(seed + int64(i)))
		agents = append(agents, player.NewPlayerAgent(id, bb, policy, cfg.Specs, rng))

		utils.Debug("arena", "Player "+string(id)+" of team "+stats.GetTeam()+" plays "+policy.Name)
	}

	if cfg.Moderator.Enabled {
		rng := rand.New(rand.NewSource(seed - 1))
		agents = append(agents, moderator.NewModerator(bb, cfg.Moderator.Probability, rng))
	}

	return agents, nil
}

func runAction(opts runOptions) error {
	utils.SetVerbose(opts.verbose)

	cfg, err := loadConfig(opts)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	rows, err := arenamap.ParseGridFile(cfg.Simulation.Map)
	if err != nil {
		return err
	}

	arenaMap, err := arenamap.NewMapContainer(rows, cfg.Specs.RotateDegrees)
	if err != nil {
		return errors.Wrapf(err, "invalid map %s", cfg.Simulation.Map)
	}

	ws, err := state.NewWorldState(arenaMap, cfg.Specs)
	if err != nil {
		return err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	agents, err := buildAgents(cfg, ws, blackboard.NewBlackboard(), seed)
	if err != nil {
		return err
	}

	gameID := ksuid.New().String()
	renderers := arenaserver.MultiRenderer{}
	tearDowns := make([]arenaserver.TearDownCallback, 0)

	if cfg.Recording.Path != "" {
		renderers = append(renderers, recording.NewRecorder(cfg.Recording.Path, arenaMap, cfg.Specs))
	}

	if cfg.Viz.Addr != "" {
		recordDir := ""
		if cfg.Recording.Path != "" {
			recordDir = filepath.Dir(cfg.Recording.Path)
		}

		service := vizserver.NewVizService(cfg.Viz.Addr, recordDir, os.Stdout)
		game := types.NewVizGame(gameID, arenaMap, cfg.Specs)
		service.AddGame(game)

		vizRenderer := vizserver.NewRenderer(game)
		service.RegisterHealthCheck("viz-frames", vizRenderer.Healthy)
		renderers = append(renderers, vizRenderer)

		go func() {
			if err := service.ListenAndServe(); err != nil {
				utils.WarnWith(err)
			}
		}()

		utils.Debug("arena", "Watch the game on http://"+cfg.Viz.Addr+"/game/"+gameID)

		tearDowns = append(tearDowns, func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return service.Shutdown(ctx)
		})
	}

	if opts.terminal {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "could not open terminal")
		}

		view, err := terminal.NewRenderer(screen, arenaMap, frameDelay(opts.tps))
		if err != nil {
			return errors.Wrap(err, "could not open terminal")
		}

		// the screen owns stdout until the game ends
		previous := utils.SetDebugOutput(io.Discard)
		tearDowns = append(tearDowns, func() error {
			utils.SetDebugOutput(previous)
			return nil
		})

		renderers = append(renderers, view)
	} else if opts.progress {
		renderers = append(renderers, newProgressRenderer(cfg.Simulation.MaxTicks, os.Stderr))
	}

	simulation, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), agents, renderers, cfg.Simulation.MaxTicks)
	if err != nil {
		return err
	}

	for _, tearDown := range tearDowns {
		simulation.AddTearDownCall(tearDown)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := simulation.Run(ctx); err != nil {
		return err
	}

	summary := arenaserver.Summarize(simulation.GetState())
	printSummary(os.Stdout, summary, simulation.GetKills())

	if opts.dump {
		spew.Fdump(os.Stdout, simulation.GetState().Snapshot())
	}

	return nil
}

func frameDelay(tps int) time.Duration {
	if tps <= 0 {
		return 0
	}

	return time.Second / time.Duration(tps)
}
