// Package matrix provides core linear algebra primitives for array-based
// computations. Dense is the concrete, row-major matrix value type, storing
// elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major rows×cols matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order;
// element (i,j) lives at flat offset i*c+j. A Dense with r==0 or c==0 is the
// empty matrix and holds no storage (data == nil).
type Dense[T Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context, reporting
// the offending indices and the valid bounds.
func denseErrorf(method string, row, col, rows, cols int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): rows=%d, cols=%d: %w", method, row, col, rows, cols, err)
}

// NewDense creates an r×c Dense matrix initialized to zero values.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): allocate the flat backing slice; a zero dimension in
// either direction yields the empty matrix with no storage.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// Zero in either dimension collapses to the canonical empty matrix.
	if rows == 0 || cols == 0 {
		return &Dense[T]{}, nil
	}

	// Return initialized Dense
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of rows, copying every element.
// All rows must have the same length; ragged input fails with ErrBadShape.
// An empty slice (or all-empty rows) yields the empty matrix.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	// Columns are fixed by the first row; every other row must match.
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
	}
	if c == 0 {
		return &Dense[T]{}, nil
	}

	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i]) // row-major placement
	}

	return m, nil
}

// FromSlice builds an r×c Dense from a flat row-major slice, always copying —
// the caller keeps ownership of data and later mutations do not alias.
// len(data) must equal rows*cols.
// Complexity: O(r*c).
func FromSlice[T Number](data []T, rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromSlice(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice: len(data)=%d, want %d: %w", len(data), rows*cols, ErrLengthMismatch)
	}
	if rows == 0 || cols == 0 {
		return &Dense[T]{}, nil
	}

	m := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	copy(m.data, data) // deep copy, never steal the caller's buffer

	return m, nil
}

// RowVector builds a 1×n matrix from x, copying. An empty x yields the empty matrix.
func RowVector[T Number](x []T) *Dense[T] {
	if len(x) == 0 {
		return &Dense[T]{}
	}
	m := &Dense[T]{r: 1, c: len(x), data: make([]T, len(x))}
	copy(m.data, x)

	return m
}

// ColVector builds an n×1 matrix from x, copying. An empty x yields the empty matrix.
func ColVector[T Number](x []T) *Dense[T] {
	if len(x) == 0 {
		return &Dense[T]{}
	}
	m := &Dense[T]{r: len(x), c: 1, data: make([]T, len(x))}
	copy(m.data, x)

	return m
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// Size returns the total number of elements (rows*cols).
// Complexity: O(1).
func (m *Dense[T]) Size() int {
	return len(m.data)
}

// Empty reports whether the matrix holds no elements.
// Complexity: O(1).
func (m *Dense[T]) Empty() bool {
	return m.r == 0 || m.c == 0
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return the linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, m.r, m.c, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, m.r, m.c, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (with the offending index and valid bounds) when the
// position is outside the matrix.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange when the position is outside the matrix.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AtLinear retrieves the element at flat row-major offset i.
// Complexity: O(1).
func (m *Dense[T]) AtLinear(i int) (T, error) {
	if i < 0 || i >= len(m.data) {
		var zero T
		return zero, fmt.Errorf("Dense.AtLinear(%d): size=%d: %w", i, len(m.data), ErrOutOfRange)
	}

	return m.data[i], nil
}

// Row returns a copy of row r as a flat slice.
// Complexity: O(c).
func (m *Dense[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf("Row", r, 0, m.r, m.c, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Col returns a copy of column c as a flat slice.
// Complexity: O(r).
func (m *Dense[T]) Col(c int) ([]T, error) {
	if c < 0 || c >= m.c {
		return nil, denseErrorf("Col", 0, c, m.r, m.c, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c] // strided gather down the column
	}

	return out, nil
}

// RowMatrix returns row r as a fresh 1×cols matrix.
// Complexity: O(c).
func (m *Dense[T]) RowMatrix(r int) (*Dense[T], error) {
	row, err := m.Row(r)
	if err != nil {
		return nil, err
	}

	return RowVector(row), nil
}

// ColMatrix returns column c as a fresh rows×1 matrix.
// Complexity: O(r).
func (m *Dense[T]) ColMatrix(c int) (*Dense[T], error) {
	col, err := m.Col(c)
	if err != nil {
		return nil, err
	}

	return ColVector(col), nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	if m.Empty() {
		return &Dense[T]{}
	}
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Fill assigns v to every element.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clear resets the matrix to the empty 0×0 state, releasing storage.
// Complexity: O(1).
func (m *Dense[T]) Clear() {
	m.r, m.c, m.data = 0, 0, nil
}

// Resize reshapes the matrix to newRows×newCols in place.
// Stage 1 (Validate): reject negative dimensions; a zero dimension clears the
// matrix entirely (0×0, no storage).
// Stage 2 (Execute): allocate a fresh buffer and copy the row-wise overlap of
// min(oldRows,newRows) rows and min(oldCols,newCols) columns, preserving
// row-major positions; grown cells are zero-initialized.
// Complexity: O(newRows*newCols).
func (m *Dense[T]) Resize(newRows, newCols int) error {
	if newRows < 0 || newCols < 0 {
		return fmt.Errorf("Dense.Resize(%d,%d): %w", newRows, newCols, ErrBadShape)
	}
	if newRows == m.r && newCols == m.c {
		return nil // same shape, nothing to do
	}
	if newRows == 0 || newCols == 0 {
		m.Clear()
		return nil
	}

	newData := make([]T, newRows*newCols)

	// Copy the overlapping region row by row.
	minR := min(m.r, newRows)
	minC := min(m.c, newCols)
	for r := 0; r < minR; r++ {
		copy(newData[r*newCols:r*newCols+minC], m.data[r*m.c:r*m.c+minC])
	}

	m.r, m.c, m.data = newRows, newCols, newData

	return nil
}

// RowPermute reorders rows in place by gathering: new[r] = old[perm[r]].
// perm must be a true permutation of 0..rows-1 — wrong size or duplicate
// indices fail with ErrBadPermutation, out-of-range entries with ErrOutOfRange.
// The gather direction is load-bearing for pivoting callers: perm[r] names the
// SOURCE row that lands in position r.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) RowPermute(perm []int) error {
	if err := ValidatePermutation(perm, m.r); err != nil {
		return fmt.Errorf("Dense.RowPermute: %w", err)
	}
	if m.Empty() {
		return nil
	}

	newData := make([]T, len(m.data))
	for r := 0; r < m.r; r++ {
		// new row r is old row perm[r], copied wholesale
		copy(newData[r*m.c:(r+1)*m.c], m.data[perm[r]*m.c:(perm[r]+1)*m.c])
	}
	m.data = newData

	return nil
}

// ColPermute reorders columns in place by gathering: new(r,c) = old(r,perm[c]).
// Validation mirrors RowPermute against the column count.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) ColPermute(perm []int) error {
	if err := ValidatePermutation(perm, m.c); err != nil {
		return fmt.Errorf("Dense.ColPermute: %w", err)
	}
	if m.Empty() {
		return nil
	}

	newData := make([]T, len(m.data))
	for r := 0; r < m.r; r++ {
		base := r * m.c
		for c := 0; c < m.c; c++ {
			newData[base+c] = m.data[base+perm[c]]
		}
	}
	m.data = newData

	return nil
}

// Equal reports whether m and other have the same shape and identical elements.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')
		for j := 0; j < m.c; j++ { // iterate over columns
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
