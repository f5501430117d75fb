package config

import (
	"bytes"
	"os"
	"path"

	"github.com/bytearena/gridarena/game/specs"
	"github.com/kardianos/osext"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// DefaultFilename is looked up next to the executable when no configuration file is given.
const DefaultFilename = "arena.toml"

type SimulationConfig struct {
	Map      string `toml:"map"`
	MaxTicks int    `toml:"max_ticks"`
	Seed     int64  `toml:"seed"` // 0 seeds from the clock
}

type AgentsConfig struct {
	DefaultPolicy string            `toml:"default_policy"`
	Teams         map[string]string `toml:"teams"` // team rune => policy name
}

type ModeratorConfig struct {
	Enabled     bool    `toml:"enabled"`
	Probability float64 `toml:"probability"`
}

type VizConfig struct {
	Addr string `toml:"addr"` // empty disables the viz server
}

type RecordingConfig struct {
	Path string `toml:"path"` // empty disables the recording
}

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Specs      specs.ArenaSpecs `toml:"specs"`
	Agents     AgentsConfig     `toml:"agents"`
	Moderator  ModeratorConfig  `toml:"moderator"`
	Viz        VizConfig        `toml:"viz"`
	Recording  RecordingConfig  `toml:"recording"`
}

func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			MaxTicks: 500,
		},
		Specs: specs.MakeDefaultArenaSpecs(),
		Agents: AgentsConfig{
			DefaultPolicy: "dummy",
			Teams:         make(map[string]string),
		},
		Moderator: ModeratorConfig{
			Enabled:     false,
			Probability: 0.5,
		},
	}
}

// Load reads a TOML file over the default configuration; keys absent from the file keep their
// default value, unknown keys are rejected.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read configuration %s", filename)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not decode configuration %s", filename)
	}

	if cfg.Agents.Teams == nil {
		cfg.Agents.Teams = make(map[string]string)
	}

	return cfg, nil
}

// Locate returns DefaultFilename in the folder of the running executable, if such a file exists.
func Locate() (string, bool) {
	folder, err := osext.ExecutableFolder()
	if err != nil {
		return "", false
	}

	candidate := path.Join(folder, DefaultFilename)
	if info, err := os.Stat(candidate); err != nil || info.IsDir() {
		return "", false
	}

	return candidate, true
}

// PolicyFor returns the policy configured for team.
func (cfg Config) PolicyFor(team string) string {
	if policy, ok := cfg.Agents.Teams[team]; ok && policy != "" {
		return policy
	}

	return cfg.Agents.DefaultPolicy
}

func (cfg Config) Validate() error {
	if cfg.Simulation.MaxTicks <= 0 {
		return errors.Errorf("simulation.max_ticks must be positive, got %d", cfg.Simulation.MaxTicks)
	}

	if cfg.Agents.DefaultPolicy == "" {
		return errors.New("agents.default_policy must be provided in the configuration")
	}

	if cfg.Moderator.Probability < 0 || cfg.Moderator.Probability > 1 {
		return errors.Errorf("moderator.probability must be in [0, 1], got %v", cfg.Moderator.Probability)
	}

	return errors.Wrap(cfg.Specs.Validate(), "invalid specs")
}
