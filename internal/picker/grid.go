// Package picker implements the modal editors of the configurator: the color
// grid, the icon grid and the name and separator dialogs.
package picker

// WrapHorizontal moves index one cell in the direction of delta within a
// palette of n entries, wrapping at both ends.
func WrapHorizontal(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	switch {
	case delta > 0:
		if index < n-1 {
			return index + 1
		}
		return 0
	case delta < 0:
		if index > 0 {
			return index - 1
		}
		return n - 1
	}
	return index
}

// MoveVertical moves index one row in the direction of delta on a grid with
// cols columns. Rows clamp at the top and bottom. The column is kept, but the
// result is clamped to n-1, so moving down into a short last row can land on
// a different column.
func MoveVertical(index, delta, cols, n int) int {
	if n <= 0 {
		return 0
	}
	cols = max(cols, 1)
	row, col := index/cols, index%cols
	totalRows := (n + cols - 1) / cols

	switch {
	case delta > 0 && row+1 < totalRows:
		row++
	case delta < 0 && row > 0:
		row--
	}
	return min(row*cols+col, n-1)
}

// Columns returns how many cells of cellWidth fit in width, at least one.
func Columns(width, cellWidth int) int {
	if cellWidth <= 0 {
		return 1
	}
	return max(width/cellWidth, 1)
}

// Page returns the page holding index when pages hold cols*rows entries.
func Page(index, cols, rows int) int {
	size := max(cols, 1) * max(rows, 1)
	return index / size
}
