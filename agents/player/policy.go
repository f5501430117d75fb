package player

import (
	"sort"

	"github.com/bytearena/gridarena/game/action"
	"github.com/pkg/errors"
)

var ErrUnknownPolicy = errors.New("unknown policy")

type Policy struct {
	Name  string
	Rules []Rule
}

var dummyRules = []Rule{aimAtEnemy, avoidWalls, wander}

var policies = map[string]Policy{
	"idle": {
		Name:  "idle",
		Rules: []Rule{},
	},
	"random": {
		Name:  "random",
		Rules: []Rule{anyAction},
	},
	"dummy": {
		Name:  "dummy",
		Rules: dummyRules,
	},
	"tactical": {
		Name: "tactical",
		Rules: []Rule{
			duringTimeout(dummyRules),
			detectOscillation,
			aimAtEnemy,
			avoidWalls,
			followMessage,
			always(action.Forward{}),
		},
	},
}

func LookupPolicy(name string) (Policy, error) {
	policy, ok := policies[name]
	if !ok {
		return Policy{}, errors.Wrap(ErrUnknownPolicy, name)
	}

	return policy, nil
}

func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
