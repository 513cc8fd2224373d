package life

//Cell is a single grid position: its alive/dead state, the staged state
//for the next generation and the lookup edges to its compass neighbors.
//Cells are created by the Grid and their neighbor edges are wired once,
//right after creation; the topology never changes afterwards.
type Cell struct {
	x, y         int
	alive        bool
	pendingAlive bool
	neighbors    [numDirections]*Cell
}

//newCell creates a dead cell at position x, y
func newCell(x int, y int) *Cell {
	return &Cell{x: x, y: y}
}

//X returns the cell's column coordinate
func (c *Cell) X() int {
	return c.x
}

//Y returns the cell's row coordinate
func (c *Cell) Y() int {
	return c.y
}

//Alive reports whether the cell is currently alive
func (c *Cell) Alive() bool {
	return c.alive
}

//Toggle flips the cell's state
func (c *Cell) Toggle() {
	c.alive = !c.alive
}

//SetAlive sets the cell's state unconditionally
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

//SetNeighbor records n as the neighbor in the given direction,
//overwriting any prior value; an invalid direction is skipped
func (c *Cell) SetNeighbor(d Direction, n *Cell) {
	if !d.Valid() {
		return
	}
	c.neighbors[d] = n
}

//Neighbor returns the neighbor in the given direction, nil when the
//direction is unassigned (grid boundary) or invalid
func (c *Cell) Neighbor(d Direction) *Cell {
	if !d.Valid() {
		return nil
	}
	return c.neighbors[d]
}

//CountLiveNeighbors returns the number of assigned neighbors which are
//currently alive, always within [0, 8]
func (c *Cell) CountLiveNeighbors() (n int) {
	for _, nb := range c.neighbors {
		if nb != nil && nb.alive {
			n++
		}
	}
	return
}

//StageNext records the state the cell will take in the next generation,
//the current state stays untouched until Commit
func (c *Cell) StageNext(alive bool) {
	c.pendingAlive = alive
}

//Commit replaces the cell's state with the staged one.
//The grid stages every cell before committing any, so the staged value
//is always defined here.
func (c *Cell) Commit() {
	c.alive = c.pendingAlive
}
