package columnview

import (
	"fmt"
	"github.com/robinovitch61/hcols/internal/dev"
)

// Terminology:
// - column: one index of the data source, laid out left to right by cumulative width
// - materialized: a column with a live view attached to the surface
// - visible set: the materialized columns, always contiguous and sorted by column
// - pool: detached views waiting to be bound to a column again
// - margin: how many columns past the viewport edge stay materialized, so fast scrolls never show an empty column
//
//            margin        viewport         margin
//   pool  |  [ 3 ][ 4 ] [ 5 ][ 6 ][ 7 ] [ 8 ][ 9 ]  |  pool
//

type materialized struct {
	view   View
	column int
}

// Manager decides which columns have live views for the current scroll offset and recycles the rest
type Manager struct {
	surface ScrollSurface
	source  DataSource
	pool    *ReusePool

	// visible is the visible set, sorted by ascending column with no gaps
	visible []materialized

	// margin is recomputed on every reload from the viewport width and the narrowest column
	margin int

	pagingEnabled bool

	onSelect func(column int)
	onStop   func(Stats)
}

type Option func(*Manager)

// WithSelectHandler sets the function called with the column index when a materialized cell is tapped
func WithSelectHandler(fn func(column int)) Option {
	return func(m *Manager) {
		m.onSelect = fn
	}
}

// WithStopHandler sets the function called with pool/visible counts whenever scrolling comes to rest
func WithStopHandler(fn func(Stats)) Option {
	return func(m *Manager) {
		m.onStop = fn
	}
}

func New(surface ScrollSurface, source DataSource, opts ...Option) *Manager {
	m := &Manager{
		surface: surface,
		source:  source,
		pool:    NewReusePool(),
		margin:  minMargin,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register associates a reuse identifier with a way of constructing views for it
func (m *Manager) Register(identifier string, strategy Strategy) {
	m.pool.Register(identifier, strategy)
}

// DequeueReusableCell returns a recycled view for identifier, constructing one if none is pooled
func (m *Manager) DequeueReusableCell(identifier string) View {
	return m.pool.Acquire(identifier)
}

func (m *Manager) SetPagingEnabled(enabled bool) {
	m.pagingEnabled = enabled
	m.surface.SetPagingEnabled(enabled)
}

func (m *Manager) PagingEnabled() bool {
	return m.pagingEnabled
}

// SetSelectHandler replaces the select handler. nil disables selection callbacks
func (m *Manager) SetSelectHandler(fn func(column int)) {
	m.onSelect = fn
}

// Layout is called when the surface bounds change
func (m *Manager) Layout() {
	m.Reload(false)
}

// Reload discards the visible set and rebuilds it from the data source around the current offset, optionally scrolling
// back to the first column first
func (m *Manager) Reload(resetToStart bool) {
	m.releaseAll()

	if resetToStart {
		m.surface.SetOffset(0)
	}

	offset, viewportWidth := m.surface.Offset(), m.surface.ViewportWidth()
	count := m.columnCount()
	minWidth := viewportWidth
	var x Length
	for i := 0; i < count; i++ {
		w := m.source.ColumnWidth(i)
		if i == 0 || w < minWidth {
			minWidth = w
		}
		if x >= offset-w && x <= offset+viewportWidth {
			m.append(i, Frame{X: x, Width: w})
		}
		x += w
	}
	m.surface.SetContentWidth(x)
	m.margin = Margin(viewportWidth, minWidth)
	dev.Debug(fmt.Sprintf("reload: %d columns, width %.1f, margin %d, visible %v", count, x, m.margin, m.VisibleColumns()))
}

// OnOffsetChanged brings the visible set in line with a new scroll offset
func (m *Manager) OnOffsetChanged(offset Length) {
	count := m.columnCount()
	if count == 0 {
		m.releaseAll()
		return
	}
	geo := m.Geometry()
	first, last := geo.FirstColumnAt(offset), geo.LastColumnAt(offset)

	if len(m.visible) == 0 || first-m.margin > m.lastColumn() || last+m.margin <= m.firstColumn() {
		// the window jumped clear of everything materialized, so recycle it all before building the new window
		m.releaseAll()
		m.append(first, Frame{X: geo.Origin(first), Width: m.source.ColumnWidth(first)})
	}

	m.extendLeft(first)
	m.extendRight(last, count)
	m.trimLeft(offset)
	m.trimRight(offset + m.surface.ViewportWidth())
}

// OnDragEnded is called when the user lifts off a drag. If the surface will not decelerate, scrolling has stopped
func (m *Manager) OnDragEnded(decelerate bool) {
	if !decelerate {
		m.scrollStopped()
	}
}

// OnDecelerateEnded is called when the surface comes to rest after a drag
func (m *Manager) OnDecelerateEnded() {
	m.scrollStopped()
}

func (m *Manager) scrollStopped() {
	stats := m.Stats()
	dev.Debug(fmt.Sprintf("visible:%d pooled:%d constructed:%d", stats.Visible, stats.Pooled, stats.Constructed))
	if m.onStop != nil {
		m.onStop(stats)
	}
}

// Tap forwards a tap on v to the select handler with the column v is laid out for
func (m *Manager) Tap(v View) {
	if v == nil || m.onSelect == nil {
		return
	}
	m.onSelect(m.Geometry().ColumnOf(v.Frame()))
}

// Geometry returns the layout helper for the current data source and viewport
func (m *Manager) Geometry() Geometry {
	return NewGeometry(m.source, m.surface.ViewportWidth())
}

// Margin returns the look-ahead column count computed at the last reload
func (m *Manager) Margin() int {
	return m.margin
}

// VisibleColumns returns the materialized column indexes in order
func (m *Manager) VisibleColumns() []int {
	columns := make([]int, len(m.visible))
	for i := range m.visible {
		columns[i] = m.visible[i].column
	}
	return columns
}

// VisibleViews returns the materialized views in column order
func (m *Manager) VisibleViews() []View {
	views := make([]View, len(m.visible))
	for i := range m.visible {
		views[i] = m.visible[i].view
	}
	return views
}

func (m *Manager) Stats() Stats {
	return Stats{
		Visible:     len(m.visible),
		Pooled:      m.pool.Len(),
		Constructed: m.pool.Constructed(),
	}
}

// Pool exposes the reuse pool for inspection
func (m *Manager) Pool() *ReusePool {
	return m.pool
}

func (m *Manager) extendLeft(first int) {
	if len(m.visible) == 0 {
		return
	}
	firstMaterialized := m.firstColumn()
	if first > firstMaterialized {
		return
	}
	start := max(0, first-m.margin)
	for i := firstMaterialized - 1; i >= start; i-- {
		w := m.source.ColumnWidth(i)
		m.prepend(i, Frame{X: m.visible[0].view.Frame().X - w, Width: w})
	}
}

func (m *Manager) extendRight(last, count int) {
	if len(m.visible) == 0 {
		return
	}
	lastMaterialized := m.lastColumn()
	if last < lastMaterialized {
		return
	}
	end := min(count, last+m.margin)
	for i := lastMaterialized + 1; i < end; i++ {
		x := m.visible[len(m.visible)-1].view.Frame().MaxX()
		m.append(i, Frame{X: x, Width: m.source.ColumnWidth(i)})
	}
}

// trimLeft drops head columns once the column margin-1 places further right has started scrolling out of view
func (m *Manager) trimLeft(offset Length) {
	for len(m.visible) >= m.margin && m.visible[m.margin-1].view.Frame().X < offset {
		m.release(m.visible[0].view)
		m.visible = m.visible[1:]
	}
}

// trimRight drops tail columns once the column margin-1 places further left has started scrolling out of view
func (m *Manager) trimRight(rightEdge Length) {
	if len(m.visible) <= m.margin {
		return
	}
	for len(m.visible) >= m.margin && m.visible[len(m.visible)-m.margin].view.Frame().MaxX() > rightEdge {
		m.release(m.visible[len(m.visible)-1].view)
		m.visible = m.visible[:len(m.visible)-1]
	}
}

func (m *Manager) append(column int, f Frame) {
	m.visible = append(m.visible, m.materialize(column, f))
}

func (m *Manager) prepend(column int, f Frame) {
	m.visible = append([]materialized{m.materialize(column, f)}, m.visible...)
}

// materialize asks the data source for column's view and attaches it at f
func (m *Manager) materialize(column int, f Frame) materialized {
	v := m.source.CellView(m, column)
	if v == nil || m.isVisible(v) {
		v = &Placeholder{}
	}
	m.pool.Remove(v)
	m.surface.BindTap(v, m.Tap)
	v.SetFrame(f)
	m.surface.AddSubview(v)
	return materialized{view: v, column: column}
}

func (m *Manager) release(v View) {
	m.surface.RemoveSubview(v)
	m.pool.Release(v)
}

func (m *Manager) releaseAll() {
	for i := range m.visible {
		m.release(m.visible[i].view)
	}
	m.visible = nil
}

func (m *Manager) isVisible(v View) bool {
	for i := range m.visible {
		if m.visible[i].view == v {
			return true
		}
	}
	return false
}

func (m *Manager) firstColumn() int {
	return m.visible[0].column
}

func (m *Manager) lastColumn() int {
	return m.visible[len(m.visible)-1].column
}

func (m *Manager) columnCount() int {
	if m.source == nil {
		return 0
	}
	return max(0, m.source.ColumnCount())
}
