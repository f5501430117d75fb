package arenaserver

import (
	"context"
	"strconv"

	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/action"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Run ticks until the simulation is complete, the renderer asks to stop or ctx is done.
// ctx is only checked between ticks. The renderer is stopped and teardown callbacks are run
// before returning. A stop request is not an error.
func (s *Simulation) Run(ctx context.Context) error {
	defer s.TearDown()

	utils.Debug("arena", "Starting simulation with "+strconv.Itoa(len(s.agents))+" agents, max "+strconv.Itoa(s.maxTicks)+" ticks")

	if s.monitorEvery > 0 {
		stopMonitoring := make(chan struct{})
		defer close(stopMonitoring)
		go s.monitoring(stopMonitoring, s.monitorEvery)
	}

	// initial state
	if err := s.renderer.Display(s.state); err != nil {
		if errors.Cause(err) == ErrStopRequested {
			utils.Debug("arena", "Renderer requested stop before the first tick")
			return nil
		}

		return err
	}

	for !s.IsComplete() {
		if err := ctx.Err(); err != nil {
			utils.Debug("arena", "Received stop signal at tick "+strconv.Itoa(s.state.Tick))
			return nil
		}

		if err := s.DoTick(); err != nil {
			if errors.Cause(err) == ErrStopRequested {
				utils.Debug("arena", "Renderer requested stop at tick "+strconv.Itoa(s.state.Tick))
				return nil
			}

			return err
		}
	}

	return nil
}

// DoTick runs one tick: parallel decisions, sequential apply, advance, display, termination.
func (s *Simulation) DoTick() error {
	if s.status == StatusComplete {
		return ErrSimulationComplete
	}

	if s.logEvery > 0 && s.state.Tick%s.logEvery == 0 {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(s.state.Tick))
	}

	///////////////////////////////////////////////////////////////////////////
	// Decision phase: every agent perceives and decides concurrently
	///////////////////////////////////////////////////////////////////////////
	actions, err := s.decide()
	if err != nil {
		return errors.Wrapf(err, "decision phase failed at tick %d", s.state.Tick)
	}

	///////////////////////////////////////////////////////////////////////////
	// Apply phase: single writer, stable agent order
	///////////////////////////////////////////////////////////////////////////
	for i, agent := range s.agents {
		s.state, err = s.registry.Dispatch(agent.GetPlayerID(), actions[i], s.state)
		if err != nil {
			return errors.Wrapf(err, "apply phase failed at tick %d", s.state.Tick)
		}
	}

	///////////////////////////////////////////////////////////////////////////
	// Updating world state
	///////////////////////////////////////////////////////////////////////////
	kills := s.state.Advance()
	s.onKills(kills)
	s.tickCounter.Add(1)

	if err := s.renderer.Display(s.state); err != nil {
		return err
	}

	if s.shouldComplete() {
		s.status = StatusComplete
		s.onComplete()
	}

	return nil
}

// decide runs See for every agent, then SelectAction for every agent, each step in parallel.
// Blackboard writes made while selecting are read at the next tick, whatever the scheduling.
func (s *Simulation) decide() ([]action.Action, error) {
	percepts := make([]Percept, len(s.agents))
	for i, agent := range s.agents {
		percept, err := s.GetPercept(agent)
		if err != nil {
			return nil, err
		}
		percepts[i] = percept
	}

	err := s.eachAgent(func(i int, agent Agent) error {
		agent.See(percepts[i])
		return nil
	})
	if err != nil {
		return nil, err
	}

	actions := make([]action.Action, len(s.agents))
	err = s.eachAgent(func(i int, agent Agent) error {
		act := agent.SelectAction()
		if act == nil {
			return errors.Wrapf(ErrNoDecision, "%s agent %q", agent.GetRole(), agent.GetPlayerID())
		}

		actions[i] = act
		return nil
	})
	if err != nil {
		return nil, err
	}

	return actions, nil
}

// eachAgent calls fn concurrently for every agent and joins. A panic is reported as an error.
func (s *Simulation) eachAgent(fn func(i int, agent Agent) error) error {
	var group errgroup.Group
	for i, agent := range s.agents {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("%s agent %q panicked: %v", agent.GetRole(), agent.GetPlayerID(), r)
				}
			}()

			return fn(i, agent)
		})
	}

	return group.Wait()
}

func (s *Simulation) TearDown() {
	s.tearDownCallbacksMutex.Lock()
	defer s.tearDownCallbacksMutex.Unlock()

	if s.renderer != nil {
		utils.Debug("arena", "Stopping renderer")
		s.renderer.Stop()
		s.renderer = NullRenderer{}
	}

	for i := len(s.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		if err := s.tearDownCallbacks[i](); err != nil {
			utils.Debug("teardown", "TearDownCallback failed: "+err.Error())
		}
	}

	// Reset to avoid calling teardown callback multiple times
	s.tearDownCallbacks = make([]TearDownCallback, 0)

	postEvent(EventStopped, s.state.Tick)
}
