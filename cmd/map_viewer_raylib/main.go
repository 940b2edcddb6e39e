// Map viewer on raylib: the same map, players and camera as the game,
// without popups or stages.
package main

import (
	"image/color"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"silicogenesis/internal/config"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
	"silicogenesis/pkg/palette"
)

// hexRotation turns raylib's polygon so a vertex points up.
const hexRotation = 30.0

func main() {
	os.Exit(run())
}

func run() int {
	settings, settingsErr := config.Load()
	slog.SetDefault(settings.Logger(os.Stderr))
	if settingsErr != nil {
		slog.Warn("ignoring invalid settings", "error", settingsErr)
	}

	// --- Init ---
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.ApplicationName)
	if !rl.IsWindowReady() {
		slog.Error("window failed to initialise")
		return 1
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	rl.BeginDrawing()
	rl.ClearBackground(colorToRL(config.MapBackgroundColor))
	rl.DrawText("Loading...", config.LoadingOffsetX, int32(rl.GetScreenHeight())-config.LoadingOffsetY,
		config.LoadingFontSize, colorToRL(config.TextColor))
	rl.EndDrawing()

	w := world.New(world.Options{Players: settings.Players, Layout: settings.Layout()})
	slog.SetDefault(slog.Default().With("session", w.ID.String()))
	slog.Info("world ready", "players", len(w.Players), "layout", settings.ResourceLayout)

	// --- Main loop ---
	for !rl.WindowShouldClose() {
		update(w)
		draw(w, settings.DebugLabels)
	}
	return 0
}

func update(w *world.World) {
	w.Tick()
	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		w.Scroll(float64(wheel.X)*config.ScrollSpeed, float64(wheel.Y)*config.ScrollSpeed)
	}

	mouse := rl.GetMousePosition()
	at := hexmap.RenderCoord{X: float64(mouse.X), Y: float64(mouse.Y)}
	w.SetHovered(at.ContainingHex(w.Origin))
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		hex := w.HexUnder(at)
		slog.Info("hex selected", "hex", hex.Coord, "resource", hex.Resource)
	}
}

func draw(w *world.World, debugLabels bool) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(colorToRL(config.MapBackgroundColor))

	width, height := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	hovered, hasHovered := w.Hovered()
	outline := colorToRL(config.HexOutlineColor)
	label := colorToRL(config.TextColor)

	hexmap.Visible(w.Origin, width, height, func(c hexmap.HexCoord, at hexmap.RenderCoord) {
		center := rl.NewVector2(float32(at.X), float32(at.Y))
		if fill, ok := palette.ResourceColor(w.Map.At(c).Resource, hasHovered && c == hovered); ok {
			rl.DrawPoly(center, hexmap.HexSides, hexmap.HexRadius, hexRotation, colorToRL(fill))
		}
		rl.DrawPolyLinesEx(center, hexmap.HexSides, hexmap.HexRadius, hexRotation, config.StrokeWidth, outline)
		if debugLabels {
			rl.DrawText(c.String(), int32(at.X), int32(at.Y), config.HexLabelFontSize, label)
		}
	})

	for _, p := range w.Players {
		for _, f := range p.Facilities {
			at := f.Location.MapCoord().RenderCoord(w.Origin)
			rl.DrawText(f.Type.Label(), int32(at.X)-config.FacilityOffset, int32(at.Y)-config.FacilityOffset,
				config.FacilityFontSize, colorToRL(palette.FacilityColor(f.State)))
		}
	}

	rl.DrawFPS(config.FPSOffsetX, config.FPSOffsetY)
}

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
