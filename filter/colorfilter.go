package filter

// ColorFilter transforms each pixel's color independently of its
// neighbours. It is one of MatrixFilter, TableFilter or BlendColorFilter.
type ColorFilter interface {
	colorFilter()
}

// MatrixFilter applies a 4x5 color transformation matrix.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Color values are in [0, 255] during transformation, so the fifth
// column is on the 0-255 scale.
type MatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

func (*MatrixFilter) colorFilter() {}

// IdentityMatrix returns the 4x5 identity color matrix.
func IdentityMatrix() [20]float32 {
	return [20]float32{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// AlphaMatrix returns the matrix that zeroes RGB and keeps alpha.
func AlphaMatrix() [20]float32 {
	return [20]float32{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Transform applies the matrix to a straight-alpha color and clamps the
// result to [0, 255].
func (f *MatrixFilter) Transform(c Color) Color {
	m := &f.Matrix
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	return Color{
		R: clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]),
		G: clampUint8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]),
		B: clampUint8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]),
		A: clampUint8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]),
	}
}

// Concat returns a filter equivalent to applying f first, then next.
func (f *MatrixFilter) Concat(next *MatrixFilter) *MatrixFilter {
	a := &next.Matrix
	b := &f.Matrix

	result := &MatrixFilter{}
	r := &result.Matrix

	// 4x5 * 4x5, treating the fifth column as a constant term.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}
	return result
}

// TableFilter maps each channel through a 256-entry lookup table.
type TableFilter struct {
	A, R, G, B [256]byte
}

func (*TableFilter) colorFilter() {}

// IdentityTable returns a lookup table with table[i] == i.
func IdentityTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	return t
}

// Transform looks each channel of c up in its table.
func (f *TableFilter) Transform(c Color) Color {
	return Color{R: f.R[c.R], G: f.G[c.G], B: f.B[c.B], A: f.A[c.A]}
}

// BlendColorFilter blends a constant color with the input.
type BlendColorFilter struct {
	Color Color
	Mode  BlendMode
}

func (*BlendColorFilter) colorFilter() {}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
