package hexmap

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// ResourceLayout decides which deposit each hex carries.
type ResourceLayout interface {
	ResourceAt(c HexCoord) ResourceType
}

// PlaceholderLayout scatters deposits on a fixed 16x16 lattice.
type PlaceholderLayout struct{}

func (PlaceholderLayout) ResourceAt(c HexCoord) ResourceType {
	return PlaceholderResource(c)
}

// PlaceholderResource returns Metal at (10, 4) and Oil at (2, 12) within
// every 16x16 block, and no deposit elsewhere.
func PlaceholderResource(c HexCoord) ResourceType {
	i, j := c.I%16, c.J%16
	switch {
	case i == 10 && j == 4:
		return ResourceMetal
	case i == 2 && j == 12:
		return ResourceOil
	default:
		return ResourceNone
	}
}

// Noise layout tuning.
const (
	noiseFrequency     = 1.5
	noiseOctaves       = 3
	noisePersistence   = 0.5
	depositThreshold   = 0.68
	metalOilSplitpoint = 0.5
)

// NoiseLayout places deposits in seeded OpenSimplex clusters. The noise is
// sampled on a 4D torus so clusters continue across the map seams.
type NoiseLayout struct {
	deposit opensimplex.Noise
	kind    opensimplex.Noise
}

// NewNoiseLayout returns a layout that is fully determined by seed.
func NewNoiseLayout(seed int64) *NoiseLayout {
	return &NoiseLayout{
		deposit: opensimplex.NewNormalized(seed),
		kind:    opensimplex.NewNormalized(seed + 1),
	}
}

func (l *NoiseLayout) ResourceAt(c HexCoord) ResourceType {
	p := c.Wrapped().MapCoord()
	if torusNoise(l.deposit, p, noiseOctaves) < depositThreshold {
		return ResourceNone
	}
	if torusNoise(l.kind, p, 1) < metalOilSplitpoint {
		return ResourceMetal
	}
	return ResourceOil
}

// torusNoise samples noise for a map position so that the result is periodic
// in both map dimensions.
func torusNoise(noise opensimplex.Noise, p MapCoord, octaves int) float64 {
	a := 2 * math.Pi * p.X / MapWidthPixels
	b := 2 * math.Pi * p.Y / MapHeightPixels
	x, y := math.Cos(a), math.Sin(a)
	z, w := math.Cos(b), math.Sin(b)

	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := noiseFrequency
	for k := 0; k < octaves; k++ {
		total += noise.Eval4(x*frequency, y*frequency, z*frequency, w*frequency) * amplitude
		maxVal += amplitude
		amplitude *= noisePersistence
		frequency *= 2
	}
	return total / maxVal
}
