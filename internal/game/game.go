// Package game hosts the hexagon field in an ebiten window: display ticks,
// pointer movement, window resizes and the keyboard shortcuts.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/hexfield/internal/chime"
	"github.com/iburimskiy/hexfield/internal/config"
	"github.com/iburimskiy/hexfield/internal/frameloop"
	"github.com/iburimskiy/hexfield/internal/hexfield"
	"github.com/iburimskiy/hexfield/internal/raster"
	"github.com/iburimskiy/hexfield/internal/theme"
)

// Options wires a Game to its collaborators.
type Options struct {
	Width, Height int
	Seed          int64
	HUD           bool
	Palette       config.ResolvedPalette
	Themes        *theme.Store
	Chime         *chime.Player
}

// Game implements ebiten.Game.
type Game struct {
	animator *hexfield.Animator
	loop     *frameloop.Loop
	surface  *screenSurface
	themes   *theme.Store
	chime    *chime.Player
	palette  config.ResolvedPalette

	// window
	outsideW, outsideH int

	// pointer
	pointerX int
	pointerY int

	// state
	hud     bool
	lastErr error
}

// New builds a game. The field is seeded on the first Update, once the
// window size is known.
func New(opts Options) *Game {
	a := hexfield.New(rand.New(rand.NewSource(opts.Seed)), opts.Palette, opts.Themes.IsDark)
	g := &Game{
		animator: a,
		surface:  newScreenSurface(),
		themes:   opts.Themes,
		chime:    opts.Chime,
		palette:  opts.Palette,
		outsideW: opts.Width,
		outsideH: opts.Height,
		pointerX: -1,
		pointerY: -1,
		hud:      opts.HUD,
	}
	g.loop = frameloop.New(a.Advance)
	return g
}

// Stop ends the animation; the next Update terminates the game.
func (g *Game) Stop() {
	g.loop.Stop()
	g.animator.Stop()
}

func (g *Game) Update() error {
	if g.animator.Resize(g.outsideW, g.outsideH) {
		log.Debug().Int("width", g.outsideW).Int("height", g.outsideH).
			Int("particles", g.animator.Len()).Msg("field reseeded")
	}

	if x, y := ebiten.CursorPosition(); x != g.pointerX || y != g.pointerY {
		g.pointerX, g.pointerY = x, y
		g.animator.OnPointerMove(float64(x), float64(y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePaused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshotDialog(); err != nil {
			g.fail(err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Stop()
	}

	if err := g.loop.Tick(); errors.Is(err, frameloop.ErrStopped) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	dark := g.themes.IsDark()
	g.surface.bind(screen)
	g.surface.Clear(rgb255(g.palette.Background(dark)))
	g.animator.Draw(g.surface)

	if !g.hud {
		return
	}
	status := fmt.Sprintf("%s | %d hexagons | %.0f FPS | T theme, Space pause, S snapshot, H hud, Esc quit",
		g.themes.Theme(), g.animator.Len(), ebiten.ActualFPS())
	if g.loop.Paused() {
		status += " | paused"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout follows the window so the canvas always covers it; the size is
// applied to the field on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) toggleTheme() {
	next, err := g.themes.Toggle()
	if err != nil {
		g.fail(err)
		return
	}
	log.Info().Str("theme", string(next)).Msg("theme toggled")
	if err := g.chime.Play(next == theme.Dark); err != nil {
		log.Warn().Err(err).Msg("chime disabled")
	}
}

func (g *Game) saveSnapshotDialog() error {
	w, h := g.animator.Size()
	s := raster.New(w, h)
	if s.Empty() {
		log.Warn().Int("width", w).Int("height", h).Msg("empty viewport, snapshot skipped")
		return nil
	}

	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("hexfield.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	s.Clear(rgb255(g.palette.Background(g.themes.IsDark())))
	g.animator.Draw(s)
	if err := s.SavePNG(filename); err != nil {
		return err
	}
	log.Info().Str("path", filename).Int("hexagons", s.Filled()).Msg("snapshot saved")
	return nil
}

func (g *Game) fail(err error) {
	g.lastErr = err
	log.Error().Err(err).Msg("hexfield")
}

// Run opens the window and blocks until it is closed or stopped.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("hexfield - T: theme, Space: pause, S: snapshot, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := New(opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
