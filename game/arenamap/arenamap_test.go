package arenamap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapContainerAddsBorder(t *testing.T) {
	m, err := NewMapContainer([]string{"A..", ".#.", "..B"}, 15)
	require.Nil(t, err)

	assert.Equal(t, 5, m.Width)
	assert.Equal(t, 5, m.Height)
	assert.Equal(t, []string{"#####", "#A..#", "#.#.#", "#..B#", "#####"}, m.Rows)

	for x := 0; x < m.Width; x++ {
		assert.True(t, m.IsWall(x, 0))
		assert.True(t, m.IsWall(x, m.Height-1))
	}
	assert.True(t, m.IsWall(2, 2))
	assert.False(t, m.IsWall(1, 1))
	assert.False(t, m.IsWall(-1, 1))
	assert.False(t, m.IsWall(1, 99))
}

func TestShortRowsArePadded(t *testing.T) {
	m, err := NewMapContainer([]string{"A....", ".", "..B"}, 15)
	require.Nil(t, err)

	assert.Equal(t, 7, m.Width)
	assert.Equal(t, "#"+strings.Repeat(".", 5)+"#", "#"+m.Rows[2][1:6]+"#")
	assert.Equal(t, "#.....#", m.Rows[2])
	assert.Equal(t, "#..B..#", m.Rows[3])
}

func TestEmptyGrid(t *testing.T) {
	_, err := NewMapContainer([]string{}, 15)
	assert.Equal(t, ErrEmptyGrid, err)

	_, err = NewMapContainer([]string{"", ""}, 15)
	assert.Equal(t, ErrEmptyGrid, err)
}

func TestPlacements(t *testing.T) {
	m, err := NewMapContainer([]string{
		"A....",
		".....",
		".....",
		".....",
		"....B",
	}, 15)
	require.Nil(t, err)

	ids := m.GetPlayerIDs()
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])

	a, ok := m.GetPlacement(ids[0])
	require.True(t, ok)
	assert.Equal(t, "A", a.Team)
	assert.True(t, a.Position.Equals(vector.MakeVector2(1, 1)))
	dir, ok := a.GetDirection()
	require.True(t, ok)
	assert.InDelta(t, 45.0, dir.AngleDeg(), 1e-9)

	b, _ := m.GetPlacement(ids[1])
	assert.Equal(t, "B", b.Team)
	assert.True(t, b.Position.Equals(vector.MakeVector2(5, 5)))
	dir, _ = b.GetDirection()
	assert.InDelta(t, -135.0, dir.AngleDeg(), 1e-9)

	assert.Equal(t, []string{"A", "B"}, m.Teams())
}

func TestDefaultFacingIsSnapped(t *testing.T) {
	m, err := NewMapContainer([]string{"A......", "......."}, 15)
	require.Nil(t, err)

	placement, _ := m.GetPlacement(m.GetPlayerIDs()[0])
	dir, ok := placement.GetDirection()
	require.True(t, ok)

	assert.InDelta(t, 15.0, dir.AngleDeg(), 1e-9)
	assert.InDelta(t, 1.0, dir.Mag(), 1e-9)
}

func TestNearestWalls(t *testing.T) {
	m, err := NewMapContainer([]string{"...", ".#.", "..."}, 15)
	require.Nil(t, err)

	center := m.NearestWalls(vector.MakeVector2(2, 2))
	assert.Len(t, center, 1)
	assert.True(t, center[0].Equals(vector.MakeVector2(2, 2)))

	corner := m.NearestWalls(vector.MakeVector2(1, 1))
	assert.Len(t, corner, 6)

	outside := m.NearestWalls(vector.MakeVector2(-0.6, 0))
	assert.Len(t, outside, 2)
}

func TestParseGrid(t *testing.T) {
	rows, err := ParseGrid(strings.NewReader("A..  \n\n.#.\r\n..B\n"))
	require.Nil(t, err)
	assert.Equal(t, []string{"A..", ".#.", "..B"}, rows)

	_, err = ParseGrid(strings.NewReader("\n  \n"))
	assert.Equal(t, ErrEmptyGrid, err)
}

func TestParseGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.map")
	require.Nil(t, os.WriteFile(path, []byte("A.B\n"), 0644))

	rows, err := ParseGridFile(path)
	require.Nil(t, err)
	assert.Equal(t, []string{"A.B"}, rows)

	_, err = ParseGridFile(filepath.Join(t.TempDir(), "missing.map"))
	assert.NotNil(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
