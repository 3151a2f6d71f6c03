package columnview

import "math"

// minMargin is the smallest number of look-ahead columns kept on each side of the viewport
const minMargin = 2

// edgeTolerance is the relative tolerance used when matching a view's right edge to a cumulative column width
const edgeTolerance = 1e-6

// Geometry answers layout questions about a DataSource's columns for a given viewport width. It holds no state of its
// own: every answer is recomputed from the data source
type Geometry struct {
	source        DataSource
	viewportWidth Length
}

func NewGeometry(source DataSource, viewportWidth Length) Geometry {
	return Geometry{source: source, viewportWidth: viewportWidth}
}

// Origin returns the x-origin of column, the sum of the widths of all columns before it. O(column)
func (g Geometry) Origin(column int) Length {
	var x Length
	n := min(column, g.count())
	for i := 0; i < n; i++ {
		x += g.source.ColumnWidth(i)
	}
	return x
}

// FirstColumnAt returns the column containing offset
func (g Geometry) FirstColumnAt(offset Length) int {
	return g.columnContaining(offset)
}

// LastColumnAt returns the column containing the right edge of the viewport when scrolled to offset
func (g Geometry) LastColumnAt(offset Length) int {
	return g.columnContaining(offset + g.viewportWidth)
}

// columnContaining returns the smallest i such that origin(i) <= x < origin(i) + width(i). Falls back to 0 when there
// are no columns or x is before the content, and to the last column when x is at or past the end of the content
func (g Geometry) columnContaining(x Length) int {
	n := g.count()
	if n == 0 || x < 0 || math.IsNaN(x) {
		return 0
	}
	var total Length
	for i := 0; i < n; i++ {
		w := g.source.ColumnWidth(i)
		if total <= x && x < total+w {
			return i
		}
		total += w
	}
	return n - 1
}

// ColumnOf recovers the column a frame was laid out for by matching its right edge against the running total of
// column widths. O(count), so only for taps and other rare lookups
func (g Geometry) ColumnOf(f Frame) int {
	edge := f.MaxX()
	var total Length
	for i := 0; i < g.count(); i++ {
		total += g.source.ColumnWidth(i)
		if edgesMatch(edge, total) {
			return i
		}
	}
	return 0
}

// MinColumnWidth returns the narrowest column width, or the viewport width if there are no columns
func (g Geometry) MinColumnWidth() Length {
	n := g.count()
	if n == 0 {
		return g.viewportWidth
	}
	minWidth := g.source.ColumnWidth(0)
	for i := 1; i < n; i++ {
		if w := g.source.ColumnWidth(i); w < minWidth {
			minWidth = w
		}
	}
	return minWidth
}

// TotalWidth returns the scrollable content width
func (g Geometry) TotalWidth() Length {
	return g.Origin(g.count())
}

func (g Geometry) count() int {
	if g.source == nil {
		return 0
	}
	return max(0, g.source.ColumnCount())
}

// Margin returns how many extra columns to keep materialized on each side of the viewport
// so that fast scrolling never shows a column that has not been constructed yet
func Margin(viewportWidth, minColumnWidth Length) int {
	if !(minColumnWidth > 0) || math.IsNaN(viewportWidth) || viewportWidth < 0 {
		return minMargin
	}
	extra := math.Floor(viewportWidth/2/minColumnWidth) + 1
	if math.IsInf(extra, 0) || extra > math.MaxInt32 {
		return math.MaxInt32
	}
	return max(minMargin, int(extra))
}

func edgesMatch(a, b Length) bool {
	return math.Abs(a-b) <= edgeTolerance*math.Max(1, math.Abs(b))
}
