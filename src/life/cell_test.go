package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellToggle(t *testing.T) {
	c := newCell(1, 2)
	assert.Equal(t, 1, c.X())
	assert.Equal(t, 2, c.Y())
	assert.False(t, c.Alive())

	c.Toggle()
	assert.True(t, c.Alive())
	c.Toggle()
	assert.False(t, c.Alive())
}

func TestCellSetAlive(t *testing.T) {
	c := newCell(0, 0)
	c.SetAlive(true)
	assert.True(t, c.Alive())
	c.SetAlive(true)
	assert.True(t, c.Alive())
	c.SetAlive(false)
	assert.False(t, c.Alive())
}

func TestCellSetNeighbor(t *testing.T) {
	c := newCell(0, 0)
	n1 := newCell(0, 1)
	n2 := newCell(0, 1)

	c.SetNeighbor(North, n1)
	assert.Same(t, n1, c.Neighbor(North))

	//a later assignment overwrites the prior one
	c.SetNeighbor(North, n2)
	assert.Same(t, n2, c.Neighbor(North))

	//an invalid direction is skipped
	c.SetNeighbor(Direction(99), n1)
	assert.Nil(t, c.Neighbor(Direction(99)))
	assert.Nil(t, c.Neighbor(Direction(-1)))
}

func TestCellCountLiveNeighbors(t *testing.T) {
	c := newCell(1, 1)
	assert.Equal(t, 0, c.CountLiveNeighbors(), "no neighbors assigned")

	live := newCell(1, 2)
	live.SetAlive(true)
	dead := newCell(2, 2)

	c.SetNeighbor(North, live)
	c.SetNeighbor(NorthEast, dead)
	assert.Equal(t, 1, c.CountLiveNeighbors(), "unassigned and dead neighbors contribute 0")

	for _, d := range Directions() {
		n := newCell(0, 0)
		n.SetAlive(true)
		c.SetNeighbor(d, n)
	}
	assert.Equal(t, 8, c.CountLiveNeighbors(), "upper bound")
}

func TestCellStageCommit(t *testing.T) {
	c := newCell(0, 0)

	c.StageNext(true)
	assert.False(t, c.Alive(), "staging does not mutate the current state")
	c.Commit()
	assert.True(t, c.Alive())

	c.StageNext(false)
	assert.True(t, c.Alive())
	c.Commit()
	assert.False(t, c.Alive())
}
