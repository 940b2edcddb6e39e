// Mapgen renders the whole toroidal map, with resources and player
// influence, to a PNG file and optionally a thumbnail.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/llgcode/draw2d/draw2dimg"

	"silicogenesis/internal/config"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
	"silicogenesis/pkg/palette"
)

// influenceOpacity is how strongly an influenced hex takes its player's tint.
const influenceOpacity = 0.4

var opts = struct {
	Output     string
	Thumbnail  string
	ThumbWidth int
	Scale      float64
	Influence  bool
}{
	Output:     "map.png",
	ThumbWidth: 256,
	Scale:      0.5,
	Influence:  true,
}

func main() {
	flag.StringVar(&opts.Output, "o", opts.Output, "Output PNG file.")
	flag.StringVar(&opts.Thumbnail, "thumb", opts.Thumbnail, "Also write a thumbnail PNG to this file.")
	flag.IntVar(&opts.ThumbWidth, "thumb-width", opts.ThumbWidth, "Thumbnail width in pixels.")
	flag.Float64Var(&opts.Scale, "scale", opts.Scale, "Output pixels per map pixel.")
	flag.BoolVar(&opts.Influence, "influence", opts.Influence, "Tint hexes inside a control center's influence.")
	flag.Parse()

	settings, settingsErr := config.Load()
	slog.SetDefault(settings.Logger(os.Stderr))
	if settingsErr != nil {
		slog.Warn("ignoring invalid settings", "error", settingsErr)
	}

	if err := run(settings); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
	if opts.Scale <= 0 || opts.ThumbWidth <= 0 {
		return errors.New("scale and thumbnail width must be positive")
	}

	w := world.New(world.Options{Players: settings.Players, Layout: settings.Layout()})
	logger := slog.With("session", w.ID.String())
	logger.Info("rendering map", "layout", settings.ResourceLayout, "seed", settings.Seed, "scale", opts.Scale)

	img := renderMap(w, opts.Scale, opts.Influence)
	if err := writePNG(opts.Output, img); err != nil {
		return err
	}
	logger.Info("wrote map", "file", opts.Output, "bounds", img.Bounds())

	if opts.Thumbnail == "" {
		return nil
	}
	thumb := thumbnail(img, opts.ThumbWidth)
	if err := writePNG(opts.Thumbnail, thumb); err != nil {
		return err
	}
	logger.Info("wrote thumbnail", "file", opts.Thumbnail, "bounds", thumb.Bounds())
	return nil
}

// renderMap draws every hex of w at scale. Hexes on the seam are drawn on
// both sides so the image tiles seamlessly.
func renderMap(w *world.World, scale float64, influence bool) *image.RGBA {
	width := int(math.Ceil(hexmap.MapWidthPixels * scale))
	height := int(math.Ceil(hexmap.MapHeightPixels * scale))
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(config.MapBackgroundColor)
	gc.BeginPath()
	gc.MoveTo(0, 0)
	gc.LineTo(float64(width), 0)
	gc.LineTo(float64(width), float64(height))
	gc.LineTo(0, float64(height))
	gc.Close()
	gc.Fill()

	gc.Scale(scale, scale)
	gc.SetStrokeColor(config.HexOutlineColor)
	gc.SetLineWidth(config.StrokeWidth)

	for i := 0; i < hexmap.HexCount; i++ {
		c := hexmap.HexCoordFromIndex(i)
		gc.SetFillColor(hexColor(w, c, influence))
		vertices := c.Vertices()
		for _, dx := range []float64{-hexmap.MapWidthPixels, 0, hexmap.MapWidthPixels} {
			for _, dy := range []float64{-hexmap.MapHeightPixels, 0, hexmap.MapHeightPixels} {
				if !onImage(c.MapCoord(), dx, dy) {
					continue
				}
				gc.BeginPath()
				for k, v := range vertices {
					if k == 0 {
						gc.MoveTo(v.X+dx, v.Y+dy)
					} else {
						gc.LineTo(v.X+dx, v.Y+dy)
					}
				}
				gc.Close()
				gc.FillStroke()
			}
		}
	}
	return img
}

// onImage reports whether a hex centred at center, shifted by (dx, dy),
// overlaps the map rectangle.
func onImage(center hexmap.MapCoord, dx, dy float64) bool {
	x, y := center.X+dx, center.Y+dy
	return x > -hexmap.HexWidth && x < hexmap.MapWidthPixels+hexmap.HexWidth &&
		y > -hexmap.HexRadius && y < hexmap.MapHeightPixels+hexmap.HexRadius
}

func hexColor(w *world.World, c hexmap.HexCoord, influence bool) color.RGBA {
	fill, ok := palette.ResourceColor(w.Map.At(c).Resource, false)
	if !ok {
		fill = config.MapBackgroundColor
	}
	if !influence {
		return fill
	}
	if owners := w.Influencers(c); len(owners) > 0 {
		fill = palette.Mix(fill, palette.PlayerColor(owners[0].ID), influenceOpacity)
	}
	return fill
}

// thumbnail scales img down to width, keeping its aspect ratio.
func thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	return transform.Resize(img, width, height, transform.Linear)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
