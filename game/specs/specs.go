package specs

import "github.com/pkg/errors"

// ArenaSpecs holds the tuning constants shared by perception, executors and the world state.
type ArenaSpecs struct {
	// Movements
	RotateDegrees   float64 `json:"rotatedegrees" toml:"rotate_degrees"`     // turn step, also the facing grid
	ForwardDistance float64 `json:"forwarddistance" toml:"forward_distance"` // distance covered by one forward action

	// Vision
	ViewFOV        float64 `json:"viewfov" toml:"view_fov"` // degrees, centered on the facing
	NumRays        int     `json:"numrays" toml:"num_rays"`
	RayLength      float64 `json:"raylength" toml:"ray_length"`
	RayTracerSteps int     `json:"raytracersteps" toml:"ray_tracer_steps"` // samples per ray and per projectile segment

	// Shoot
	ShootingDelayTicks    int     `json:"shootingdelayticks" toml:"shooting_delay_ticks"`
	ShootingDurationTicks int     `json:"shootingdurationticks" toml:"shooting_duration_ticks"`
	ShootingLengthPerTick float64 `json:"shootinglengthpertick" toml:"shooting_length_per_tick"`
	ShootingFOV           float64 `json:"shootingfov" toml:"shooting_fov"`

	// Bodies
	WallSize       float64 `json:"wallsize" toml:"wall_size"`
	PlayerDiameter float64 `json:"playerdiameter" toml:"player_diameter"`

	// Memory
	LastActionsLen int `json:"lastactionslen" toml:"last_actions_len"`
}

func MakeDefaultArenaSpecs() ArenaSpecs {
	return ArenaSpecs{
		RotateDegrees:   15,
		ForwardDistance: 0.25,

		ViewFOV:        90,
		NumRays:        21,
		RayLength:      8,
		RayTracerSteps: 40,

		ShootingDelayTicks:    10,
		ShootingDurationTicks: 10,
		ShootingLengthPerTick: 1.0,
		ShootingFOV:           30,

		WallSize:       1,
		PlayerDiameter: 0.8,

		LastActionsLen: 8,
	}
}

func (s ArenaSpecs) PlayerRadius() float64 {
	return s.PlayerDiameter / 2.0
}

func (s ArenaSpecs) Validate() error {
	switch {
	case s.RotateDegrees <= 0 || s.RotateDegrees >= 180:
		return errors.Errorf("rotate_degrees must be in ]0, 180[, got %v", s.RotateDegrees)
	case s.ForwardDistance <= 0:
		return errors.Errorf("forward_distance must be positive, got %v", s.ForwardDistance)
	case s.ViewFOV < 0 || s.ViewFOV > 360:
		return errors.Errorf("view_fov must be in [0, 360], got %v", s.ViewFOV)
	case s.NumRays < 1:
		return errors.Errorf("num_rays must be at least 1, got %d", s.NumRays)
	case s.RayLength <= 0:
		return errors.Errorf("ray_length must be positive, got %v", s.RayLength)
	case s.RayTracerSteps < 1:
		return errors.Errorf("ray_tracer_steps must be at least 1, got %d", s.RayTracerSteps)
	case s.ShootingDelayTicks < 0:
		return errors.Errorf("shooting_delay_ticks must not be negative, got %d", s.ShootingDelayTicks)
	case s.ShootingDurationTicks < 1:
		return errors.Errorf("shooting_duration_ticks must be at least 1, got %d", s.ShootingDurationTicks)
	case s.ShootingLengthPerTick <= 0:
		return errors.Errorf("shooting_length_per_tick must be positive, got %v", s.ShootingLengthPerTick)
	case s.WallSize <= 0:
		return errors.Errorf("wall_size must be positive, got %v", s.WallSize)
	case s.PlayerDiameter <= 0:
		return errors.Errorf("player_diameter must be positive, got %v", s.PlayerDiameter)
	case s.LastActionsLen < 0:
		return errors.Errorf("last_actions_len must not be negative, got %d", s.LastActionsLen)

	// steps longer than a wall cell could cross the border
	case s.ForwardDistance >= s.WallSize/2:
		return errors.Errorf("forward_distance must be below half the wall size (%v), got %v", s.WallSize/2, s.ForwardDistance)
	case s.ShootingLengthPerTick/float64(s.RayTracerSteps) >= s.WallSize:
		return errors.Errorf("shooting_length_per_tick / ray_tracer_steps must be below the wall size (%v), got %v", s.WallSize, s.ShootingLengthPerTick/float64(s.RayTracerSteps))
	case s.RayLength/float64(s.RayTracerSteps) >= s.WallSize:
		return errors.Errorf("ray_length / ray_tracer_steps must be below the wall size (%v), got %v", s.WallSize, s.RayLength/float64(s.RayTracerSteps))
	}

	return nil
}
