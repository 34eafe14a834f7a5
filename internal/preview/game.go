package preview

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tableau"
	"github.com/phanxgames/tableau/internal/logging"
)

// Source produces frames over time. Director, TransitionPlayer and
// ChainPlayer all satisfy it.
type Source interface {
	Update(dt float32)
	Frame() tableau.Frame
}

// Options configures a Game.
type Options struct {
	Width, Height int // artboard size in pixels
	Margin        int
	ScreenshotDir string
	Logger        *slog.Logger
	// Reset rewinds the source when R is pressed. Optional.
	Reset func()
}

var (
	backgroundColor = color.RGBA{R: 0x19, G: 0x19, B: 0x23, A: 0xff}
	artboardColor   = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf7, A: 0xff}
)

const hudRefresh = 0.5 // seconds between HUD text refreshes

// Game is an ebiten.Game that plays a Source. Space pauses, R resets,
// S saves a screenshot. When the source is a Director, pointer input
// drives its triggers.
type Game struct {
	source   Source
	director *Director
	opts     Options
	logger   *slog.Logger

	paused      bool
	elapsed     float64 // seconds of unpaused playback
	ops         []DrawOp
	hud         string
	sinceHUD    float64
	screenshots []string
}

// NewGame wraps src for ebiten.RunGame.
func NewGame(src Source, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}
	g := &Game{source: src, opts: opts, logger: opts.Logger}
	if d, ok := src.(*Director); ok {
		g.director = d
	}
	g.ops = Layout(src.Frame(), float64(opts.Margin), float64(opts.Margin))
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug("toggled pause", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshots = append(g.screenshots, g.label())
	}

	if g.director != nil {
		x, y := ebiten.CursorPosition()
		hit := HitTest(g.ops, float64(x), float64(y))
		g.director.Pointer(hit, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	}
	if !g.paused {
		g.source.Update(dt)
		g.elapsed += float64(dt)
	}
	g.ops = Layout(g.source.Frame(), float64(g.opts.Margin), float64(g.opts.Margin))

	g.sinceHUD += float64(dt)
	if g.hud == "" || g.sinceHUD >= hudRefresh {
		g.sinceHUD = 0
		g.hud = g.status()
	}
	return nil
}

func (g *Game) reset() {
	switch {
	case g.opts.Reset != nil:
		g.opts.Reset()
	case g.director != nil:
		g.director.Reset()
	}
	g.elapsed = 0
	g.logger.Debug("reset playback")
}

func (g *Game) label() string {
	if g.director != nil {
		return g.director.Current()
	}
	return fmt.Sprintf("t%.0fms", g.elapsed*1000)
}

func (g *Game) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "t=%.0fms", g.elapsed*1000)
	if g.paused {
		b.WriteString(" (paused)")
	}
	if g.director != nil {
		fmt.Fprintf(&b, "  state=%s", g.director.Current())
	}
	return b.String()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	board := artboardRect(g.opts)
	Render(screen, []DrawOp{{ID: "artboard", GeoM: board, Alpha: 1, Fill: artboardColor}})
	Render(screen, g.ops)
	ebitenutil.DebugPrint(screen, g.hud)

	if len(g.screenshots) > 0 {
		paths, err := saveScreenshots(snapshot(screen), g.opts.ScreenshotDir, g.screenshots, time.Now())
		if err != nil {
			g.logger.Error("screenshot failed", "error", err)
		}
		for _, p := range paths {
			g.logger.Info("saved screenshot", "path", p)
		}
		g.screenshots = g.screenshots[:0]
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width + 2*g.opts.Margin, g.opts.Height + 2*g.opts.Margin
}

func artboardRect(opts Options) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(float64(opts.Width), float64(opts.Height))
	m.Translate(float64(opts.Margin), float64(opts.Margin))
	return m
}
