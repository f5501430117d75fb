package collision

import (
	"sort"

	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/dhconnelly/rtreego"
)

// Body is an agent disc registered in a BodyIndex.
type Body struct {
	ID       string
	Team     string
	Position vector.Vector2
	Order    int // enumeration order; candidates are returned sorted on it
}

type indexedBody struct {
	body Body
	rect *rtreego.Rect
}

func (ib *indexedBody) Bounds() *rtreego.Rect {
	return ib.rect
}

// BodyIndex is the broad phase for point queries against agent discs.
// It only narrows candidates; PointInAgent decides.
type BodyIndex struct {
	tree     *rtreego.Rtree
	diameter float64
	size     int
}

func NewBodyIndex(bodies []Body, diameter float64) *BodyIndex {
	radius := diameter / 2.0
	spatials := make([]rtreego.Spatial, 0, len(bodies))

	for _, body := range bodies {
		x, y := body.Position.Get()
		rect, err := rtreego.NewRect(rtreego.Point{x - radius, y - radius}, []float64{diameter, diameter})
		if err != nil {
			continue
		}

		spatials = append(spatials, &indexedBody{body: body, rect: rect})
	}

	return &BodyIndex{
		tree:     rtreego.NewTree(2, 25, 50, spatials...),
		diameter: diameter,
		size:     len(spatials),
	}
}

func (index *BodyIndex) Size() int {
	return index.size
}

// BodiesAt returns the bodies whose disc contains point, in enumeration order.
func (index *BodyIndex) BodiesAt(point vector.Vector2) []Body {
	if index.size == 0 {
		return nil
	}

	px, py := point.Get()
	bb, err := rtreego.NewRect(rtreego.Point{px - 0.005, py - 0.005}, []float64{0.01, 0.01})
	if err != nil {
		return nil
	}

	spatials := index.tree.SearchIntersect(bb)
	if len(spatials) == 0 {
		return nil
	}

	hits := make([]Body, 0, len(spatials))
	for _, spatial := range spatials {
		body := spatial.(*indexedBody).body
		if PointInAgent(point, body.Position, index.diameter) {
			hits = append(hits, body)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Order < hits[j].Order
	})

	return hits
}
