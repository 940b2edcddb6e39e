// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"silicogenesis/internal/config"
	"silicogenesis/internal/event"
	"silicogenesis/internal/ui"
	"silicogenesis/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState shows the map with its players and popup windows.
type GameState struct {
	ctx         *Context
	screen      *ui.GameScreen
	unsubscribe func()
}

func NewGameState(ctx *Context) *GameState {
	return &GameState{ctx: ctx}
}

func (g *GameState) Enter() {
	if g.ctx.World == nil {
		g.ctx.World = BuildWorld(g.ctx.Settings)
	}
	g.screen = ui.NewGameScreen(g.ctx.World, g.ctx.Screen, g.ctx.Events)
	g.unsubscribe = g.ctx.Events.SubscribeFunc(event.ErrorReported, func(e event.Event) {
		g.screen.ReportError(fmt.Sprint(e.Data))
	})

	if g.ctx.FontErr != nil {
		g.screen.ReportError("Font unavailable, using the default font: " + g.ctx.FontErr.Error())
		g.ctx.FontErr = nil
	}
}

func (g *GameState) Update(deltaTime float64) {
	if g.screen.Screen != g.ctx.Screen {
		g.screen.Resize(g.ctx.Screen)
	}
	g.ctx.World.Tick()
	g.screen.HandleInput(PollInput())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MapBackgroundColor)
	g.ctx.Map.Draw(screen, g.ctx.World)
	g.ctx.UI.DrawWindows(screen, g.screen)
	render.DrawFPS(screen)
}

func (g *GameState) Exit() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}
