package sim

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"golife/src/life"
)

//Options represents the simulation's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Seed            int64 //non-zero pins the initial randomization
}

//Status represents the status of the simulation at a concrete moment
type Status struct {
	Generation  int
	RunningMode RunningState
	LiveCells   int
	StepTime    time.Duration
}

//Viewer is the interface to any viewer - the object who can display
//simulation data or control the simulation
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start()
}

//Template represents a seeding template which can be used to settle the
//field with a predefined pattern
type Template struct {
	Name        string
	Descr       string
	Coordinates [][]int //array of [x, y] coordinates
}

//RunningState is the simulation running status at a concrete moment
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

//default options
const (
	DefInterval        = time.Millisecond * 100
	DefMaxSteps        = 1000
	DefWidth           = 40
	DefHeight          = 15
	DefMaxSkippedTicks = 5
)

var DefaultOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//Simulation owns one life.Grid and drives it: timing, lifecycle and
//observation live here, the grid itself does no I/O. All grid mutation
//happens on the control-loop goroutine, one command at a time.
type Simulation struct {
	options Options
	grid    *life.Grid
	state   struct {
		Status
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
}

//NewSimulation creates a Simulation around a freshly built grid.
//The grid comes up randomized, use Clear or SettleTemplate to seed a
//specific pattern instead. stateCh may be nil when nobody consumes
//status updates.
func NewSimulation(o *Options, stateCh chan Status) (*Simulation, error) {
	if o == nil {
		o = &DefaultOptions
	}

	var gridOpts []life.Option
	if o.Seed != 0 {
		gridOpts = append(gridOpts, life.WithRand(rand.New(rand.NewSource(o.Seed))))
	}
	grid, err := life.NewGrid(o.Width, o.Height, gridOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to build the grid")
	}

	s := &Simulation{
		options:   *o,
		grid:      grid,
		stateCh:   stateCh,
		templates: map[string]Template{},
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
	}
	s.setLiveCells(grid.LiveCells())
	s.refreshView()
	go s.mainLoop()
	return s, nil
}

//setLiveCells updates the live cell counter under the state lock,
//Status() may read it from another goroutine at any time
func (s *Simulation) setLiveCells(n int) {
	s.state.Lock()
	s.state.LiveCells = n
	s.state.Unlock()
}

//AddTemplate adds a seeding template to the internal storage,
//the field can be populated with it by calling SettleTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	s.templates[tmpl.Name] = tmpl
}

//SettleTemplate clears the field and settles the named template on it
func (s *Simulation) SettleTemplate(name string) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return errors.Errorf("[SettleTemplate] unknown template: %v", name)
	}
	s.controlCh <- s.clear
	s.controlCh <- func() {
		s.grid.Settle(tmpl.Coordinates)
		s.setLiveCells(s.grid.LiveCells())
		s.refreshView()
	}
	return nil
}

//Randomize re-seeds the whole field with random data,
//it is ignored while a simulation cycle is running
func (s *Simulation) Randomize() {
	rm := s.Status().RunningMode
	if rm != RunningStateManual && rm != RunningStateFinished {
		return
	}
	s.controlCh <- s.clear
	s.controlCh <- func() {
		s.grid.Randomize()
		s.setLiveCells(s.grid.LiveCells())
		s.refreshView()
	}
}

//ToggleCell flips the cell state at point x, y
func (s *Simulation) ToggleCell(x int, y int) {
	s.controlCh <- func() {
		s.grid.ToggleCell(x, y)
		s.setLiveCells(s.grid.LiveCells())
		s.refreshView()
	}
}

//RegisterViewer registers the viewer - the simulation will call the
//viewer back whenever the state changes
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns the current simulation status
func (s *Simulation) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Options returns the current simulation configuration
func (s *Simulation) Options() Options {
	return s.options
}

//Grid returns the field the simulation drives, viewers read cell
//states from it
func (s *Simulation) Grid() *life.Grid {
	return s.grid
}

//Run starts the simulation, returns immediately
func (s *Simulation) Run() {
	s.controlCh <- s.run
}

//Stop stops a running simulation, returns immediately
func (s *Simulation) Stop() {
	s.controlCh <- s.stop
}

//Step does one generation step, returns immediately,
//the Status struct is written to the stateCh on start and on finish
func (s *Simulation) Step() {
	s.controlCh <- s.step
}

//Clear kills all cells and resets all counters, returns immediately,
//the Status struct is written to the stateCh on finish
func (s *Simulation) Clear() {
	s.controlCh <- s.clear
}

//Close stops the control loop and closes the internal channels,
//returns immediately
func (s *Simulation) Close() {
	s.closeCh <- true
}

//mainLoop - the control cycle, runs as a goroutine,
//waits for a command and executes it
func (s *Simulation) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:

		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//switchRunningState switches the simulation to the RunningState,
//also writes the new state to the stateCh to signal upper control software
func (s *Simulation) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the simulation cycle,
//it stops on Stop() or when a boundary condition is reached
func (s *Simulation) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.Status().RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > s.options.MaxSkippedTicks {
				s.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the previous step is still being calculated
			if mode != RunningStateStep {
				skipped = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop stops the simulation cycle
func (s *Simulation) stop() {
	if s.Status().RunningMode == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step advances the field by one generation.
//The run finishes when the step limit is reached, the population dies
//out or the field stops changing between generations.
func (s *Simulation) step() {
	finished := false
	maxSteps := s.options.MaxSteps
	s.state.Lock()
	rm := s.state.RunningMode
	s.state.Generation++
	generation := s.state.Generation
	s.state.Unlock()
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	if maxSteps != 0 && generation >= maxSteps {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)

	before := s.grid.Fingerprint()
	start := time.Now()
	s.grid.Advance()
	liveCells := s.grid.LiveCells()

	s.state.Lock()
	s.state.StepTime = time.Since(start)
	s.state.LiveCells = liveCells
	s.state.Unlock()

	if liveCells == 0 || s.grid.Fingerprint() == before {
		finished = true
	}
}

//clear clears the field, resets all counters
func (s *Simulation) clear() {
	s.state.Lock()
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.state.StepTime = 0
	s.state.RunningMode = RunningStateManual
	s.state.Unlock()
	s.grid.Clear()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls the Refresh event for all registered views
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
