package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/src/sim"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal frontend: it draws the field,
//configuration and status panes and maps keys and mouse clicks to
//simulation commands
type ConsoleUI struct {
	s          *sim.Simulation
	g          *gocui.Gui
	k          []keyBinding
	liveFiller string
	deadFiller string
}

var runningStateDescr = map[sim.RunningState]string{
	sim.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
	sim.RunningStateStep:     "stepping",
	sim.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
	sim.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
}

func NewConsoleUI() *ConsoleUI {
	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next generation", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Random seed", t.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "field"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) })
		if err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(s *sim.Simulation) {
	t.s = s
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

//renderField redraws the whole field, north side up
func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		v.Clear()

		var (
			grid         = t.s.Grid()
			maxW, maxH   = v.Size()
			crop         = grid.Width() > maxW || grid.Height() > maxH
			b            bytes.Buffer
			renderedRows = 0
		)

		for y := grid.Height() - 1; y >= 0; y-- {
			if renderedRows >= maxH {
				break
			}
			if renderedRows != 0 {
				b.WriteByte(10)
			}
			if crop && renderedRows == maxH-1 {
				b.WriteString(aurora.Red("The field is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < grid.Width() && x < maxW; x++ {
				if grid.Alive(x, y) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
			renderedRows++
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	st := t.s.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", st.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", st.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", st.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[st.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to go through Update when called from another goroutine
	t.g.Update(func(g *gocui.Gui) error {
		o := t.s.Options()
		if v, e := g.View("config"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", o.Width, o.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", o.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Generations", "%v max", o.MaxSteps))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("config")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("config", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.s.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.s.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.s.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.s.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.s.Randomize()
	return nil
}

//cmdMouseClick toggles the clicked cell, the screen row is flipped back
//to the grid's south-origin y coordinate
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.s.ToggleCell(cx, t.s.Grid().Height()-1-cy)
	return nil
}
