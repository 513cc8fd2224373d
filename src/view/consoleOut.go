package view

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golife/src/sim"
)

const (
	liveMarker = "o"
	deadMarker = " "

	ansiClear = "\x1b[2J\x1b[H"
)

//ConsoleOut renders the simulation as plain text frames: a border of
//'=' characters, one '|'-delimited line per row and a status line, the
//screen is wiped before each frame
type ConsoleOut struct {
	s         *sim.Simulation
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Register(s *sim.Simulation) {
	c.s = s
	o := s.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max generations: %v\n", o.MaxSteps)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	switch st.RunningMode {
	case sim.RunningStateFinished:
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nFinished:")
		fmt.Printf("  Last generation: %v\n", st.Generation)
		fmt.Printf("  Live cells: %v\n", st.LiveCells)
		fmt.Printf("  Total time: %v\n", totalTime)
	default:
		c.renderFrame(st)
	}
}

//renderFrame draws the whole field, rows printed north side up
func (c *ConsoleOut) renderFrame(st sim.Status) {
	var (
		g      = c.s.Grid()
		border = strings.Repeat("=", g.Width()+2)
		b      bytes.Buffer
	)

	b.WriteString(ansiClear)
	b.WriteString(border)
	b.WriteByte('\n')
	for y := g.Height() - 1; y >= 0; y-- {
		b.WriteString("|")
		for x := 0; x < g.Width(); x++ {
			if g.Alive(x, y) {
				b.WriteString(liveMarker)
			} else {
				b.WriteString(deadMarker)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	b.WriteByte('\n')
	fmt.Print(b.String())
	fmt.Printf("Generation: %v | Live cells: %v | Step time: %v\n",
		st.Generation, st.LiveCells, st.StepTime.Round(time.Microsecond))
}
