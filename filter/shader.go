package filter

// NoiseType selects the Perlin noise variant.
type NoiseType uint8

const (
	// FractalNoise sums signed noise octaves.
	FractalNoise NoiseType = iota

	// Turbulence sums absolute-valued noise octaves.
	Turbulence
)

// String returns the noise type name.
func (t NoiseType) String() string {
	if t == Turbulence {
		return "Turbulence"
	}
	return "FractalNoise"
}

// PerlinNoise is a procedural noise shader.
type PerlinNoise struct {
	Type           NoiseType
	BaseFrequencyX float32
	BaseFrequencyY float32
	Octaves        int
	Seed           float32

	// TileWidth and TileHeight are the stitching tile size.
	// Zero means no stitching.
	TileWidth, TileHeight int
}

// Stitched reports whether the shader stitches tile edges.
func (p *PerlinNoise) Stitched() bool {
	return p.TileWidth > 0 && p.TileHeight > 0
}
