package action

import (
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/state"
	"github.com/pkg/errors"
)

var (
	ErrUnregisteredAction = errors.New("no executor registered for action")
	ErrDuplicateExecutor  = errors.New("an executor is already registered for action")
	ErrNilAction          = errors.New("nil action")
)

// Registry maps every action kind to its executor. It is built once, before the simulation
// starts, and only read afterwards.
type Registry struct {
	executors map[Kind]Executor
}

func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[Kind]Executor),
	}
}

// NewDefaultRegistry returns a registry covering DeclaredKinds.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.mustRegister(KindWait, ExecutorFunc(executeWait))
	registry.mustRegister(KindForward, ExecutorFunc(executeForward))
	registry.mustRegister(KindTurnLeft, makeTurnExecutor(-1))
	registry.mustRegister(KindTurnRight, makeTurnExecutor(1))
	registry.mustRegister(KindShoot, ExecutorFunc(executeShoot))

	utils.Assert(registry.Validate(DeclaredKinds...) == nil, "default registry does not cover every declared action")

	return registry
}

func (registry *Registry) Register(kind Kind, executor Executor) error {
	if _, exists := registry.executors[kind]; exists {
		return errors.Wrap(ErrDuplicateExecutor, kind.String())
	}

	registry.executors[kind] = executor
	return nil
}

func (registry *Registry) mustRegister(kind Kind, executor Executor) {
	utils.Check(registry.Register(kind, executor), "could not register executor for "+kind.String())
}

// Validate checks that every kind has an executor.
func (registry *Registry) Validate(kinds ...Kind) error {
	for _, kind := range kinds {
		if _, ok := registry.executors[kind]; !ok {
			return errors.Wrap(ErrUnregisteredAction, kind.String())
		}
	}

	return nil
}

// Dispatch applies act on behalf of actor through the executor registered for its kind.
func (registry *Registry) Dispatch(actor arenamap.PlayerID, act Action, ws *state.WorldState) (*state.WorldState, error) {
	if act == nil {
		return ws, errors.Wrapf(ErrNilAction, "from %s", actor)
	}

	executor, ok := registry.executors[act.GetKind()]
	if !ok {
		return ws, errors.Wrap(ErrUnregisteredAction, act.GetKind().String())
	}

	return executor.Execute(actor, act, ws), nil
}
