package plotsurf

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is an R×C matrix of float64 values. Dimensions are fixed at
// construction; operations check them and panic on mismatch, as mismatched
// dimensions are programmer errors rather than recoverable conditions.
//
// Storage is column-major, but that is an implementation detail: all indexing
// is by (row, column). The zero value is the empty 0×0 matrix, useful only as
// the zero return alongside an error.
type Matrix struct {
	rows, cols int
	data       []float64
}

// ZeroMatrix returns the rows×cols matrix with all elements zero.
func ZeroMatrix(rows, cols int) Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("plotsurf: invalid matrix dimensions %d×%d", rows, cols))
	}
	return Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// IdentityMatrix returns the n×n identity matrix.
func IdentityMatrix(n int) Matrix {
	m := ZeroMatrix(n, n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m
}

// NewMatrix returns the matrix with the given columns. All columns must have
// the same, non-zero length.
func NewMatrix(columns ...[]float64) Matrix {
	if len(columns) == 0 || len(columns[0]) == 0 {
		panic("plotsurf: matrix needs at least one column and one row")
	}
	rows := len(columns[0])
	m := Matrix{
		rows: rows,
		cols: len(columns),
		data: make([]float64, 0, rows*len(columns)),
	}
	for i, col := range columns {
		if len(col) != rows {
			panic(fmt.Sprintf("plotsurf: jagged matrix data: column 0 has %d rows, column %d has %d", rows, i, len(col)))
		}
		m.data = append(m.data, col...)
	}
	return m
}

// MatrixFromFunc returns the rows×cols matrix whose element at (row, col) is
// f(row, col).
func MatrixFromFunc(rows, cols int, f func(row, col int) float64) Matrix {
	m := ZeroMatrix(rows, cols)
	for c := range cols {
		for r := range rows {
			m.data[c*rows+r] = f(r, c)
		}
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m Matrix) At(row, col int) float64 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("plotsurf: index (%d, %d) out of range for %d×%d matrix", row, col, m.rows, m.cols))
	}
	return m.data[col*m.rows+row]
}

func (m Matrix) String() string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%d×%d[", m.rows, m.cols)
	for r := range m.rows {
		if r > 0 {
			sb.WriteString("; ")
		}
		for c := range m.cols {
			if c > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(sb, "%g", m.At(r, c))
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal reports whether m and o have the same dimensions and elements. It
// makes Matrix comparable with go-cmp despite the unexported fields.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

func (m Matrix) assertSameSize(o Matrix, op string) {
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("plotsurf: %s of %d×%d and %d×%d matrices", op, m.rows, m.cols, o.rows, o.cols))
	}
}

// Add returns the element-wise sum of two matrices of equal dimensions.
func (m Matrix) Add(o Matrix) Matrix {
	m.assertSameSize(o, "addition")
	out := ZeroMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v + o.data[i]
	}
	return out
}

// Sub returns the element-wise difference of two matrices of equal
// dimensions.
func (m Matrix) Sub(o Matrix) Matrix {
	m.assertSameSize(o, "subtraction")
	out := ZeroMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v - o.data[i]
	}
	return out
}

// Scale returns the matrix with every element multiplied by f.
func (m Matrix) Scale(f float64) Matrix {
	out := ZeroMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * f
	}
	return out
}

// Transpose returns the C×R transpose of an R×C matrix.
func (m Matrix) Transpose() Matrix {
	return MatrixFromFunc(m.cols, m.rows, func(row, col int) float64 {
		return m.At(col, row)
	})
}

// Mul returns the matrix product m·o. The number of columns of m must equal
// the number of rows of o.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.cols != o.rows {
		panic(fmt.Sprintf("plotsurf: product of %d×%d and %d×%d matrices", m.rows, m.cols, o.rows, o.cols))
	}
	return MatrixFromFunc(m.rows, o.cols, func(row, col int) float64 {
		var sum float64
		for k := range m.cols {
			sum += m.At(row, k) * o.At(k, col)
		}
		return sum
	})
}

// ApplyVec2 applies the matrix to a vector. A 2×2 matrix applies as a linear
// map. A 3×3 matrix applies to the homogeneous vector (x, y, 1), supporting
// affine maps; the homogeneous component of the result is discarded. Other
// dimensions panic.
func (m Matrix) ApplyVec2(v Vec2) Vec2 {
	switch {
	case m.rows == 2 && m.cols == 2:
		return Vec2{
			X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y,
			Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y,
		}
	case m.rows == 3 && m.cols == 3:
		return Vec2{
			X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2),
			Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2),
		}
	default:
		panic(fmt.Sprintf("plotsurf: cannot apply %d×%d matrix to a 2D vector", m.rows, m.cols))
	}
}

// ApplyPoint applies the matrix to a point. See [Matrix.ApplyVec2].
func (m Matrix) ApplyPoint(pt Point) Point {
	return Point(m.ApplyVec2(Vec2(pt)))
}

// IsInf reports whether any element is infinite.
func (m Matrix) IsInf() bool {
	for _, v := range m.data {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether any element is NaN.
func (m Matrix) IsNaN() bool {
	for _, v := range m.data {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// MatrixFromAffine returns the 3×3 matrix representing aff, with the
// coefficients laid out as in the [Affine] documentation and a (0, 0, 1)
// bottom row.
func MatrixFromAffine(aff Affine) Matrix {
	return NewMatrix(
		[]float64{aff.N0, aff.N1, 0},
		[]float64{aff.N2, aff.N3, 0},
		[]float64{aff.N4, aff.N5, 1},
	)
}

// Affine returns the affine transform represented by a 3×3 matrix. The
// bottom row is assumed to be (0, 0, 1) and is not inspected. Matrices of
// other dimensions panic.
func (m Matrix) Affine() Affine {
	if m.rows != 3 || m.cols != 3 {
		panic(fmt.Sprintf("plotsurf: cannot interpret %d×%d matrix as an affine transform", m.rows, m.cols))
	}
	return Affine{
		m.At(0, 0), m.At(1, 0),
		m.At(0, 1), m.At(1, 1),
		m.At(0, 2), m.At(1, 2),
	}
}
