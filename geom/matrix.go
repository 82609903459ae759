package geom

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Multiply multiplies two matrices (m * other).
// The resulting matrix applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PreConcat returns m with other applied before it, matching the
// Skia-style "pre" composition used when building fragment transforms.
func (m Matrix) PreConcat(other Matrix) Matrix {
	return m.Multiply(other)
}

// TransformPoint applies the transformation to the point (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// TransformRect maps r through m and returns the bounding box of the
// four transformed corners.
func (m Matrix) TransformRect(r Rect) Rect {
	out := EmptyRect()
	for _, c := range [4][2]float64{
		{r.MinX, r.MinY}, {r.MaxX, r.MinY},
		{r.MinX, r.MaxY}, {r.MaxX, r.MaxY},
	} {
		x, y := m.TransformPoint(c[0], c[1])
		out = out.Union(Rect{MinX: x, MinY: y, MaxX: x, MaxY: y})
	}
	return out
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
