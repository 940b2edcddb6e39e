package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"silicogenesis/internal/config"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
	"silicogenesis/pkg/palette"
)

// HexRenderer draws the visible part of the map and the facilities on it.
type HexRenderer struct {
	fonts       *Fonts
	debugLabels bool
	fillImg     *ebiten.Image
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
}

func NewHexRenderer(fonts *Fonts, debugLabels bool) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &HexRenderer{
		fonts:       fonts,
		debugLabels: debugLabels,
		fillImg:     fillImg,
		fillVs:      make([]ebiten.Vertex, 0, 18),
		fillIs:      make([]uint16, 0, 18),
		strokeVs:    make([]ebiten.Vertex, 0, 36),
		strokeIs:    make([]uint16, 0, 36),
	}
}

// Draw renders every hex that touches the screen, then the facilities.
func (r *HexRenderer) Draw(screen *ebiten.Image, w *world.World) {
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	hovered, hasHovered := w.Hovered()

	hexmap.Visible(w.Origin, width, height, func(c hexmap.HexCoord, at hexmap.RenderCoord) {
		hex := w.Map.At(c)
		path := hexPath(at)
		if fill, ok := palette.ResourceColor(hex.Resource, hasHovered && c == hovered); ok {
			r.fill(screen, &path, fill)
		}
		r.stroke(screen, &path, config.HexOutlineColor)
		if r.debugLabels {
			r.fonts.DrawText(screen, c.String(), config.HexLabelFontSize, at.X, at.Y, config.TextColor)
		}
	})

	r.drawFacilities(screen, w, width, height)
}

func (r *HexRenderer) drawFacilities(screen *ebiten.Image, w *world.World, width, height float64) {
	for _, p := range w.Players {
		for _, f := range p.Facilities {
			at := f.Location.MapCoord().RenderCoord(w.Origin)
			if at.X < -hexmap.HexWidth || at.X > width+hexmap.HexWidth ||
				at.Y < -hexmap.HexRadius || at.Y > height+hexmap.HexRadius {
				continue
			}
			r.fonts.DrawText(screen, f.Type.Label(), config.FacilityFontSize,
				at.X-config.FacilityOffset, at.Y-config.FacilityOffset, palette.FacilityColor(f.State))
		}
	}
}

// DrawFPS prints the measured frame rate in the top-left corner.
func DrawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.0f", ebiten.ActualFPS()), config.FPSOffsetX, config.FPSOffsetY)
}

// hexPath is the pointy-top hexagon centred on at.
func hexPath(at hexmap.RenderCoord) vector.Path {
	path := vector.Path{}
	for i := 0; i < hexmap.HexSides; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := at.X + hexmap.HexRadius*math.Cos(angle)
		py := at.Y + hexmap.HexRadius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) stroke(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(config.StrokeWidth),
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
