// Package term renders a lava lamp in a terminal with tcell. Every cell
// shows two field samples through an upper half block, so the lamp keeps
// its proportions on screens with tall character cells.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/app"
	"lava-lamp/internal/core"
	"lava-lamp/internal/lava"
	"lava-lamp/internal/render"
)

const upperHalf = '▀'

// Viewer drives a Controller from terminal input and paints its lamp.
type Viewer struct {
	screen  tcell.Screen
	ctl     *app.Controller
	timer   *core.FixedStep
	shading render.Shading

	cols, rows int
	layout     layout
	field      *render.Field
	pixels     []byte

	buttons tcell.ButtonMask
	mouseX  int
	mouseY  int
	message string
}

// layout places the field inside the terminal.
type layout struct {
	offsetX int
	w, h    int
}

// New binds a viewer to an initialised screen.
func New(screen tcell.Screen, ctl *app.Controller, tps int) *Viewer {
	v := &Viewer{
		screen:  screen,
		ctl:     ctl,
		timer:   core.NewFixedStep(tps),
		shading: render.DefaultShading(),
	}
	v.resize()
	return v
}

func (v *Viewer) resize() {
	v.cols, v.rows = v.screen.Size()
	v.layout = fitLamp(v.cols, v.rows, v.ctl.Lamp().Aspect().X(), v.ctl.Lamp().Aspect().Y())
	if v.layout.w > 0 && v.layout.h > 0 {
		v.field = render.NewField(v.layout.w, v.layout.h)
	} else {
		v.field = nil
	}
}

// fitLamp returns the largest field with the lamp's aspect ratio that fits
// into cols×rows cells, keeping the last row for the status line.
func fitLamp(cols, rows int, ax, az float32) layout {
	h := 2 * (rows - 1)
	if cols <= 0 || h <= 0 || ax <= 0 || az <= 0 {
		return layout{}
	}
	w := int(float32(h)*ax/az + 0.5)
	if w > cols {
		w = cols
		h = int(float32(w)*az/ax+0.5) &^ 1
	}
	if w <= 0 || h <= 0 {
		return layout{}
	}
	return layout{offsetX: (cols - w) / 2, w: w, h: h}
}

func (v *Viewer) view() render.View {
	return render.NewView(v.layout.w, v.layout.h, v.ctl.Lamp().SimulationSize())
}

// pointAt maps a terminal cell to the lamp plane. ok is false outside the lamp.
func (v *Viewer) pointAt(x, y int) (mgl32.Vec3, bool) {
	fx := x - v.layout.offsetX
	if fx < 0 || fx >= v.layout.w || y < 0 || 2*y >= v.layout.h {
		return mgl32.Vec3{}, false
	}
	return v.view().PointAt(float32(fx)+0.5, float32(2*y)+1), true
}

// HandleEvent applies one terminal event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		v.ctl.Resume()
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		v.ctl.TogglePause()
	case 'n', 'N':
		v.ctl.StepOnce()
	case 'r', 'R':
		v.ctl.Reset()
	case 's', 'S':
		v.ctl.Reseed()
	case 'v', 'V':
		v.ctl.ToggleVelocityColors()
	}
	return true
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	prev := v.buttons
	v.buttons = ev.Buttons()
	v.mouseX, v.mouseY = ev.Position()
	if v.buttons&tcell.Button2 != 0 && prev&tcell.Button2 == 0 {
		p, ok := v.pointAt(v.mouseX, v.mouseY)
		if !ok {
			return
		}
		if _, err := v.ctl.Spawn(p); err != nil {
			if errors.Is(err, lava.ErrMetaballLimit) {
				v.message = "ball limit reached"
			} else {
				v.message = err.Error()
			}
		}
	}
}

// Tick runs the simulation steps that are due and applies pointer attraction
// while the left button is held. It returns the number of steps taken.
func (v *Viewer) Tick() int { return v.advance(v.timer.Pending()) }

func (v *Viewer) advance(n int) int {
	steps := 0
	for i := 0; i < n; i++ {
		if v.buttons&tcell.Button1 != 0 {
			if p, ok := v.pointAt(v.mouseX, v.mouseY); ok {
				v.ctl.Attract(p)
			}
		}
		if v.ctl.Tick(v.timer.DT()) {
			steps++
		}
	}
	return steps
}

// Draw paints the lamp and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	if v.field != nil {
		v.field.Build(v.view(), v.ctl.Lamp().RenderData())
		v.pixels = render.RGBA(v.field, v.shading)
		w := v.layout.w
		for y := 0; 2*y < v.layout.h; y++ {
			for x := 0; x < w; x++ {
				top := v.pixel(x, 2*y)
				bottom := v.pixel(x, 2*y+1)
				style := tcell.StyleDefault.Foreground(top).Background(bottom)
				v.screen.SetContent(v.layout.offsetX+x, y, upperHalf, nil, style)
			}
		}
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) pixel(x, y int) tcell.Color {
	if y >= v.layout.h {
		return tcell.ColorBlack
	}
	i := (y*v.layout.w + x) * 4
	return tcell.NewRGBColor(int32(v.pixels[i]), int32(v.pixels[i+1]), int32(v.pixels[i+2]))
}

func (v *Viewer) status() string {
	state := "running"
	if v.ctl.Paused() {
		state = "paused"
	}
	s := fmt.Sprintf(" %s | %s | %d/%d balls | seed %d | q quit  space pause  n step  r reset  s seed  v colors",
		v.ctl.Lamp().Name(), state, v.ctl.Lamp().MetaballCount(), lava.MaxBalls, v.ctl.Seed())
	if v.message != "" {
		s += " | " + v.message
	}
	return s
}

func (v *Viewer) drawStatus() {
	if v.rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range v.status() {
		if x >= v.cols {
			break
		}
		v.screen.SetContent(x, v.rows-1, r, nil, style)
		x++
	}
}

// Run polls events and redraws at the timer's rate until the user quits or
// ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(v.timer.Interval())
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}
