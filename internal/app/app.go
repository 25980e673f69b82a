//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"lava-lamp/internal/lava"
	"lava-lamp/internal/render"
	"lava-lamp/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a lava lamp to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	builder *render.FieldBuilder
	painter *render.Painter
	shader  *render.ShaderPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
}

// New constructs a Game for lamp. With useShader the metaballs are drawn by a
// fragment shader; otherwise the density field is built on the CPU.
func New(lamp *lava.Lamp, scale, hudWidth int, useShader bool) (*Game, error) {
	if scale <= 0 {
		scale = 1
	}
	size := lamp.Size()
	g := &Game{
		ctl:      NewController(lamp),
		overlay:  ui.NewOverlay(lamp, scale),
		hud:      ui.NewHUD(lamp, hudWidth),
		scale:    scale,
		hudWidth: max(hudWidth, 0),
	}
	g.overlay.SetGlow(g.ctl.Glow())
	if useShader {
		sp, err := render.NewShaderPainter(size.W, size.H, render.DefaultShading())
		if err != nil {
			return nil, fmt.Errorf("shader painter: %w", err)
		}
		g.shader = sp
	} else {
		g.builder = render.NewFieldBuilder(size.W, size.H)
		g.painter = render.NewPainter(size.W, size.H, render.DefaultShading())
	}
	return g, nil
}

// Close stops the background field builder.
func (g *Game) Close() {
	if g.builder != nil {
		g.builder.Close()
	}
}

func (g *Game) view() render.View {
	lamp := g.ctl.Lamp()
	size := lamp.Size()
	return render.NewView(size.W, size.H, lamp.SimulationSize())
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.ctl.ToggleVelocityColors()
	}
	g.overlay.Update()

	lampW := g.ctl.Lamp().Size().W * g.scale
	onPanel := g.hud.Update(lampW)
	if !onPanel {
		g.handlePointer(lampW)
	}

	g.ctl.Tick(1 / float32(ebiten.TPS()))
	if g.builder != nil {
		g.builder.Request(g.view(), g.ctl.Lamp().RenderData())
	}
	g.hud.SetStatus(g.status())
	return nil
}

func (g *Game) handlePointer(lampW int) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= lampW || my >= g.ctl.Lamp().Size().H*g.scale {
		return
	}
	p := g.view().PointAt(float32(mx)/float32(g.scale), float32(my)/float32(g.scale))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.ctl.Attract(p)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if _, err := g.ctl.Spawn(p); err != nil && !errors.Is(err, lava.ErrMetaballLimit) {
			g.ctl.Lamp().Logger().Printf("spawn: %v", err)
		}
	}
}

func (g *Game) status() string {
	state := "running"
	if g.ctl.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("%s  %d/%d balls  seed %d", state, g.ctl.Lamp().MetaballCount(), lava.MaxBalls, g.ctl.Seed())
}

// Draw renders the lamp, the overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.shader != nil {
		g.shader.Paint(screen, g.view(), g.ctl.Lamp().RenderData(), g.scale)
	} else {
		g.painter.Paint(screen, g.builder.Latest(), g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctl.Lamp().Size().W*g.scale, g.scale)
}

// Layout reports the logical screen size: the lamp plus the HUD panel.
func (g *Game) Layout(int, int) (int, int) {
	size := g.ctl.Lamp().Size()
	return size.W*g.scale + g.hudWidth, size.H * g.scale
}
