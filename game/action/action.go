package action

import "strconv"

type Kind int

const (
	KindWait Kind = iota
	KindForward
	KindTurnLeft
	KindTurnRight
	KindShoot
)

// DeclaredKinds lists every kind an agent may issue; a registry must cover all of them.
var DeclaredKinds = []Kind{
	KindWait,
	KindForward,
	KindTurnLeft,
	KindTurnRight,
	KindShoot,
}

func (k Kind) String() string {
	switch k {
	case KindWait:
		return "wait"
	case KindForward:
		return "forward"
	case KindTurnLeft:
		return "turnleft"
	case KindTurnRight:
		return "turnright"
	case KindShoot:
		return "shoot"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Action is an immutable decision returned by an agent for one tick.
type Action interface {
	GetKind() Kind
}

type Wait struct{}

func (Wait) GetKind() Kind { return KindWait }

type Forward struct{}

func (Forward) GetKind() Kind { return KindForward }

type TurnLeft struct{}

func (TurnLeft) GetKind() Kind { return KindTurnLeft }

type TurnRight struct{}

func (TurnRight) GetKind() Kind { return KindTurnRight }

// Shoot fires along the facing of the agent rotated by Angle degrees.
type Shoot struct {
	Angle float64
}

func (Shoot) GetKind() Kind { return KindShoot }
