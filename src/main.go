package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"

	"golife/src/sim"
	"golife/src/view"
)

var templates = map[string]sim.Template{
	"stable": {
		Name:        "stable",
		Descr:       "three stable patterns",
		Coordinates: [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
	"blinker": {
		Name:        "blinker",
		Descr:       "period-2 oscillator",
		Coordinates: [][]int{{2, 1}, {2, 2}, {2, 3}},
	},
	"glider": {
		Name:        "glider",
		Descr:       "diagonally traveling spaceship",
		Coordinates: [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
}

type envOptions struct {
	interactive bool
	template    string //empty keeps the random field the grid comes up with
}

func main() {
	eo, so := initOptions()

	var stateCh chan sim.Status
	if !eo.interactive {
		stateCh = make(chan sim.Status, 10) //the buffered channel with the simulation status updates
	}

	s, err := sim.NewSimulation(so, stateCh)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, tmpl := range templates {
		s.AddTemplate(tmpl)
	}

	if eo.template != "" {
		if err = s.SettleTemplate(eo.template); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if eo.interactive {
		v := view.NewConsoleUI()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
		return
	}

	runConsole(s, stateCh)
}

//runConsole runs the simulation to completion in plain console mode,
//an interrupt stops the loop cleanly without reporting an error
func runConsole(s *sim.Simulation, stateCh chan sim.Status) {
	v := view.NewConsoleOut()
	s.RegisterViewer(v)
	v.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	s.Run()
	stopping := false
	for {
		select {
		case <-sigCh:
			stopping = true
			s.Stop()
		case st := <-stateCh:
			if st.RunningMode == sim.RunningStateFinished {
				s.Close()
				close(stateCh)
				return
			}
			if stopping && st.RunningMode == sim.RunningStateManual {
				fmt.Printf("\nInterrupted at generation %v\n", st.Generation)
				s.Close()
				close(stateCh)
				return
			}
		}
	}
}

//newOptions returns fresh option sets for flag parsing, copying the
//simulation defaults so parsed flags never leak into sim.DefaultOptions
func newOptions() (eo *envOptions, so *sim.Options) {
	o := sim.DefaultOptions
	return &envOptions{}, &o
}

func initOptions() (eo *envOptions, so *sim.Options) {
	eo, so = newOptions()

	templateNames := make([]string, 0, len(templates))
	for k := range templates {
		templateNames = append(templateNames, k)
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&so.Width, "x", "width", "Width of the field")
	flaggy.Int(&so.Height, "y", "height", "Height of the field")
	flaggy.Duration(&so.Interval, "i", "interval", "Interval between the generations, for example 100ms")
	flaggy.Int(&so.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations")
	flaggy.Int64(&so.Seed, "d", "seed", "Random seed for the initial field, 0 picks one")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.String(&eo.template, "t", "template", "Seed with a template instead of random data ["+strings.Join(templateNames, "|")+"]")

	flaggy.Parse()

	if eo.template != "" {
		if _, ok := templates[eo.template]; !ok {
			flaggy.ShowHelpAndExit("unknown template")
		}
	}

	return
}
