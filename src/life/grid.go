package life

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

//Observer is an optional printf-style debug sink the grid reports its
//state changes to, it has no effect on the simulation itself
type Observer func(format string, args ...interface{})

//Option configures a Grid at construction time
type Option func(g *Grid)

//WithRand sets the random source used for the initial randomization,
//mostly useful to make tests deterministic
func WithRand(rnd *rand.Rand) Option {
	return func(g *Grid) {
		g.rnd = rnd
	}
}

//WithObserver attaches a debug observer to the grid
func WithObserver(o Observer) Option {
	return func(g *Grid) {
		g.observe = o
	}
}

//Grid is the fixed-size field of cells and the generation-advancement
//algorithm. It exclusively owns its width*height cells; the coordinate
//to cell mapping never changes after construction.
type Grid struct {
	width, height int
	cells         [][]*Cell //indexed [y][x]
	rnd           *rand.Rand
	observe       Observer
}

//NewGrid creates a width x height grid, randomizes every cell's state
//with an independent 50/50 coin flip and wires the neighbor edges.
//Non-positive dimensions are rejected.
func NewGrid(width int, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewGrid] grid dimensions must be positive, got %dx%d", width, height)
	}

	g := &Grid{width: width, height: height}
	for _, opt := range opts {
		opt(g)
	}

	g.cells = make([][]*Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]*Cell, width)
		for x := range g.cells[y] {
			g.cells[y][x] = newCell(x, y)
		}
	}
	g.randomize()
	g.wireNeighbors()

	g.debug("grid %dx%d created, %d live cells", width, height, g.LiveCells())
	return g, nil
}

//Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

//Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

//Cell returns the cell at x, y or nil when the coordinate is out of range
func (g *Grid) Cell(x int, y int) *Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y][x]
}

//Alive reports the state of the cell at x, y, false out of range
func (g *Grid) Alive(x int, y int) bool {
	c := g.Cell(x, y)
	return c != nil && c.Alive()
}

//ToggleCell flips the cell state at point x, y
func (g *Grid) ToggleCell(x int, y int) {
	if c := g.Cell(x, y); c != nil {
		c.Toggle()
	}
}

//Settle sets the cells at the given [x, y] coordinates alive,
//coordinates outside the grid are skipped
func (g *Grid) Settle(coords [][]int) {
	for _, v := range coords {
		if c := g.Cell(v[0], v[1]); c != nil {
			c.SetAlive(true)
		}
	}
}

//Clear kills every cell
func (g *Grid) Clear() {
	g.walk(func(c *Cell) {
		c.SetAlive(false)
	})
}

//Randomize re-flips every cell's state with an independent 50/50 coin
func (g *Grid) Randomize() {
	g.randomize()
}

//LiveCells returns the current number of live cells
func (g *Grid) LiveCells() (n int) {
	g.walk(func(c *Cell) {
		if c.Alive() {
			n++
		}
	})
	return
}

//Advance applies Conway's rule to every cell synchronously: a full
//staging pass over the grid computes each cell's next state from the
//current generation, then a second pass commits the staged states.
//The split is what keeps one cell's update from leaking into another's
//computation within the same generation.
func (g *Grid) Advance() {
	g.walk(func(c *Cell) {
		c.StageNext(nextState(c.Alive(), c.CountLiveNeighbors()))
	})
	g.walk(func(c *Cell) {
		c.Commit()
	})
	g.debug("generation advanced, %d live cells", g.LiveCells())
}

//Fingerprint returns an MD5 hash of the alive bitmap, two grids of the
//same size share a fingerprint exactly when their states match
func (g *Grid) Fingerprint() string {
	h := md5.New()
	g.walk(func(c *Cell) {
		if c.Alive() {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	})
	return fmt.Sprintf("%x", h.Sum(nil))
}

//nextState is Conway's transition rule: a live cell survives with 2 or
//3 live neighbors, a dead cell is born with exactly 3
func nextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

//wireNeighbors sets the neighbor edges for every cell. A candidate
//coordinate outside [0,width) x [0,height) on either side means there
//is no neighbor in that direction and the slot stays unassigned.
func (g *Grid) wireNeighbors() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			for _, d := range Directions() {
				dx, dy := d.Offset()
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
					g.debug("no neighbor %s of [%d, %d]", d, x, y)
					continue
				}
				g.cells[y][x].SetNeighbor(d, g.cells[ny][nx])
			}
		}
	}
}

//randomize flips an independent fair coin for every cell
func (g *Grid) randomize() {
	g.walk(func(c *Cell) {
		c.SetAlive(g.coin())
	})
}

//coin returns a fair random boolean
func (g *Grid) coin() bool {
	if g.rnd != nil {
		return g.rnd.Intn(2) == 1
	}
	return rand.Intn(2) == 1
}

//walk calls cb for every cell, row by row
func (g *Grid) walk(cb func(c *Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			cb(g.cells[y][x])
		}
	}
}

//debug reports to the attached observer, if any
func (g *Grid) debug(format string, args ...interface{}) {
	if g.observe != nil {
		g.observe(format, args...)
	}
}
