package arenamap

import (
	"math"
	"strings"

	"github.com/bytearena/gridarena/common/utils/trigo"
	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const (
	WallCell  = '#'
	EmptyCell = '.'
)

var ErrEmptyGrid = errors.New("grid has no cells")

type PlayerID string

func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewV4().String())
}

type PlayerPlacement struct {
	PlayerID  PlayerID        `json:"id"`
	Team      string          `json:"team"`
	Position  vector.Vector2  `json:"position"`
	Direction *vector.Vector2 `json:"direction,omitempty"` // nil until computed
}

// GetDirection returns the facing, if any.
func (p PlayerPlacement) GetDirection() (vector.Vector2, bool) {
	if p.Direction == nil {
		return vector.MakeNullVector2(), false
	}

	return *p.Direction, true
}

func (p *PlayerPlacement) SetDirection(direction vector.Vector2) {
	p.Direction = &direction
}

// MapContainer is the static arena: walls and spawn points, enclosed by a wall border.
// Cell (x, y) covers the square centered on (x, y), x being the column and y the row.
type MapContainer struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`

	walls      [][]bool
	placements map[PlayerID]PlayerPlacement
	order      []PlayerID
}

// NewMapContainer parses rows into an arena enclosed by a one-cell wall border.
// Shorter rows are padded with empty cells. '#' is a wall, '.' and ' ' are empty, any other
// rune is a spawn point whose team is the rune itself. Every spawn is given a player id and a
// facing pointing at the center of the arena, snapped to a multiple of turnStepDeg.
func NewMapContainer(rows []string, turnStepDeg float64) (*MapContainer, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	innerWidth := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > innerWidth {
			innerWidth = n
		}
	}

	if innerWidth == 0 {
		return nil, ErrEmptyGrid
	}

	width := innerWidth + 2
	height := len(rows) + 2

	border := strings.Repeat(string(WallCell), width)
	padded := make([]string, 0, height)
	padded = append(padded, border)
	for _, row := range rows {
		runes := []rune(row)
		line := string(WallCell) + string(runes) + strings.Repeat(string(EmptyCell), innerWidth-len(runes)) + string(WallCell)
		padded = append(padded, line)
	}
	padded = append(padded, border)

	m := &MapContainer{
		Width:      width,
		Height:     height,
		Rows:       padded,
		walls:      make([][]bool, height),
		placements: make(map[PlayerID]PlayerPlacement),
		order:      make([]PlayerID, 0),
	}

	for y, line := range padded {
		m.walls[y] = make([]bool, width)
		for x, cell := range []rune(line) {
			switch cell {
			case WallCell:
				m.walls[y][x] = true
			case EmptyCell, ' ':
			default:
				m.addPlacement(string(cell), vector.MakeVector2(float64(x), float64(y)), turnStepDeg)
			}
		}
	}

	return m, nil
}

func (m *MapContainer) addPlacement(team string, position vector.Vector2, turnStepDeg float64) {
	placement := PlayerPlacement{
		PlayerID: NewPlayerID(),
		Team:     team,
		Position: position,
	}

	toCenter := m.Center().Sub(position)
	if !toCenter.IsNull() {
		placement.SetDirection(trigo.SnapToAngleMultiple(toCenter.Normalize(), turnStepDeg))
	}

	m.placements[placement.PlayerID] = placement
	m.order = append(m.order, placement.PlayerID)
}

func (m *MapContainer) Center() vector.Vector2 {
	return vector.MakeVector2(float64(m.Width)/2.0, float64(m.Height)/2.0)
}

func (m *MapContainer) IsWall(x, y int) bool {
	if x < 0 || y < 0 || y >= m.Height || x >= m.Width {
		return false
	}

	return m.walls[y][x]
}

// CellOf returns the cell containing point.
func CellOf(point vector.Vector2) (int, int) {
	return int(math.Floor(point.GetX() + 0.5)), int(math.Floor(point.GetY() + 0.5))
}

// NearestWalls returns the centers of the walls in the 3x3 block of cells around point.
func (m *MapContainer) NearestWalls(point vector.Vector2) []vector.Vector2 {
	cx, cy := CellOf(point)

	walls := make([]vector.Vector2, 0, 9)
	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			if m.IsWall(x, y) {
				walls = append(walls, vector.MakeVector2(float64(x), float64(y)))
			}
		}
	}

	return walls
}

// Walls lists every wall center, row by row.
func (m *MapContainer) Walls() []vector.Vector2 {
	walls := make([]vector.Vector2, 0)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.walls[y][x] {
				walls = append(walls, vector.MakeVector2(float64(x), float64(y)))
			}
		}
	}

	return walls
}

// GetPlayerIDs returns the spawn enumeration order (row by row, left to right).
func (m *MapContainer) GetPlayerIDs() []PlayerID {
	ids := make([]PlayerID, len(m.order))
	copy(ids, m.order)
	return ids
}

func (m *MapContainer) GetPlacement(id PlayerID) (PlayerPlacement, bool) {
	placement, ok := m.placements[id]
	return placement, ok
}

func (m *MapContainer) Teams() []string {
	seen := make(map[string]bool)
	teams := make([]string, 0)
	for _, id := range m.order {
		team := m.placements[id].Team
		if !seen[team] {
			seen[team] = true
			teams = append(teams, team)
		}
	}

	return teams
}
