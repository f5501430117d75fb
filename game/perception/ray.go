package perception

import "github.com/bytearena/gridarena/common/utils/vector"

type RayObject string

var RayObjectKind = struct {
	None     RayObject
	Wall     RayObject
	Teammate RayObject
	Enemy    RayObject
}{
	None:     RayObject("none"),
	Wall:     RayObject("wall"),
	Teammate: RayObject("teammate"),
	Enemy:    RayObject("enemy"),
}

// Ray is one sample of a vision fan.
type Ray struct {
	Distance  float64        `json:"distance"`  // normalized to [0, 1]; 1 when nothing was hit
	Object    RayObject      `json:"object"`    // first object hit
	Direction vector.Vector2 `json:"direction"` // unit vector, relative to the caster facing
}

func (r Ray) Sees(object RayObject) bool {
	return r.Object == object
}
