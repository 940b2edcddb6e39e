// internal/app/game.go
package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"silicogenesis/internal/config"
	"silicogenesis/internal/state"
	"silicogenesis/internal/ui"
)

var _ ebiten.Game = (*Game)(nil)

// Game adapts the state machine to ebiten and keeps frame timings.
type Game struct {
	stateMachine   *state.StateMachine
	ctx            *state.Context
	lastUpdateTime time.Time

	timings frameTimings
}

func newGame(sm *state.StateMachine, ctx *state.Context) *Game {
	return &Game{
		stateMachine:   sm,
		ctx:            ctx,
		lastUpdateTime: time.Now(),
	}
}

func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.lastUpdateTime = now

	g.stateMachine.Update(deltaTime)
	g.timings.update += time.Since(now)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.stateMachine.Draw(screen)
	g.timings.draw += time.Since(start)
	g.timings.frames++
	if g.timings.frames >= config.FrameLogInterval {
		g.timings.log()
	}
}

// Layout follows the window size so the map fills a resized window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.ctx.Screen = ui.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	}
	return int(g.ctx.Screen.W), int(g.ctx.Screen.H)
}

// frameTimings accumulates update and draw durations between log lines.
type frameTimings struct {
	frames int
	update time.Duration
	draw   time.Duration
}

func (t *frameTimings) log() {
	n := time.Duration(t.frames)
	slog.Debug("frame timings",
		"frames", t.frames,
		"update_avg", t.update/n,
		"draw_avg", t.draw/n,
	)
	*t = frameTimings{}
}
