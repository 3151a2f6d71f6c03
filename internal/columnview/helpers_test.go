package columnview

import (
	"github.com/google/go-cmp/cmp"
	"runtime"
	"testing"
)

type testCell struct {
	frame  Frame
	column int
}

func (c *testCell) Frame() Frame     { return c.frame }
func (c *testCell) SetFrame(f Frame) { c.frame = f }

type testImage struct {
	frame Frame
	art   string
}

func (c *testImage) Frame() Frame     { return c.frame }
func (c *testImage) SetFrame(f Frame) { c.frame = f }

type testTemplate struct {
	art       string
	instances *int
}

func (t testTemplate) Instantiate() View {
	*t.instances++
	return &testImage{art: t.art}
}

type testSurface struct {
	offset       Length
	width        Length
	contentWidth Length
	paging       bool
	subviews     []View
	taps         map[View]func(View)
	bindCalls    int
}

func newTestSurface(width Length) *testSurface {
	return &testSurface{width: width, taps: make(map[View]func(View))}
}

func (s *testSurface) Offset() Length               { return s.offset }
func (s *testSurface) SetOffset(offset Length)      { s.offset = offset }
func (s *testSurface) ViewportWidth() Length        { return s.width }
func (s *testSurface) SetContentWidth(width Length) { s.contentWidth = width }
func (s *testSurface) SetPagingEnabled(enabled bool) {
	s.paging = enabled
}

func (s *testSurface) AddSubview(v View) {
	s.subviews = append(s.subviews, v)
}

func (s *testSurface) RemoveSubview(v View) {
	for i := range s.subviews {
		if s.subviews[i] == v {
			s.subviews = append(s.subviews[:i], s.subviews[i+1:]...)
			return
		}
	}
}

func (s *testSurface) BindTap(v View, handler func(View)) {
	s.bindCalls++
	if _, ok := s.taps[v]; ok {
		return
	}
	s.taps[v] = handler
}

func (s *testSurface) tap(v View) {
	if handler, ok := s.taps[v]; ok {
		handler(v)
	}
}

type testSource struct {
	widths     []Length
	identifier string
}

func uniformSource(count int, width Length) *testSource {
	widths := make([]Length, count)
	for i := range widths {
		widths[i] = width
	}
	return &testSource{widths: widths, identifier: "A"}
}

func (s *testSource) ColumnCount() int { return len(s.widths) }

func (s *testSource) ColumnWidth(column int) Length { return s.widths[column] }

func (s *testSource) CellView(d Dequeuer, column int) View {
	v := d.DequeueReusableCell(s.identifier)
	if c, ok := v.(*testCell); ok {
		c.column = column
	}
	return v
}

// newTestManager returns a manager with "A" registered as *testCell and a counter of how many cells were constructed
func newTestManager(source *testSource, viewportWidth Length, opts ...Option) (*Manager, *testSurface, *int) {
	surface := newTestSurface(viewportWidth)
	m := New(surface, source, opts...)
	constructed := new(int)
	m.Register("A", Class(func() *testCell {
		*constructed++
		return &testCell{}
	}))
	return m, surface, constructed
}

func cmpInts(t *testing.T, expected, actual []int) {
	_, file, line, _ := runtime.Caller(1)
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("\nTest %q failed at %s:%d\nDiff (-expected +actual):\n%s", t.Name(), file, line, diff)
	}
}

// checkInvariants verifies the visible set is sorted, contiguous and duplicate free, that every frame matches its
// column's geometry, and that views on the surface, in the visible set, and in the pool never overlap
func checkInvariants(t *testing.T, m *Manager, surface *testSurface) {
	t.Helper()
	geo := m.Geometry()
	seen := make(map[int]bool)
	for i, mc := range m.visible {
		if seen[mc.column] {
			t.Fatalf("column %d materialized twice: %v", mc.column, m.VisibleColumns())
		}
		seen[mc.column] = true
		if i > 0 && mc.column != m.visible[i-1].column+1 {
			t.Fatalf("visible set not contiguous: %v", m.VisibleColumns())
		}
		expected := Frame{X: geo.Origin(mc.column), Width: m.source.ColumnWidth(mc.column)}
		if !edgesMatch(mc.view.Frame().X, expected.X) || !edgesMatch(mc.view.Frame().Width, expected.Width) {
			t.Fatalf("column %d has frame %+v, expected %+v", mc.column, mc.view.Frame(), expected)
		}
		if m.pool.Contains(mc.view) {
			t.Fatalf("column %d view is both visible and pooled", mc.column)
		}
	}
	if len(surface.subviews) != len(m.visible) {
		t.Fatalf("surface has %d subviews, visible set has %d", len(surface.subviews), len(m.visible))
	}
	for _, v := range surface.subviews {
		if !m.isVisible(v) {
			t.Fatalf("surface subview %+v is not in the visible set", v.Frame())
		}
	}
}

// checkCovers verifies every column intersecting [offset, offset+width] is materialized
func checkCovers(t *testing.T, m *Manager, offset, width Length) {
	t.Helper()
	geo := m.Geometry()
	visible := make(map[int]bool)
	for _, c := range m.VisibleColumns() {
		visible[c] = true
	}
	for i := 0; i < m.source.ColumnCount(); i++ {
		x, w := geo.Origin(i), m.source.ColumnWidth(i)
		if x < offset+width && x+w > offset && !visible[i] {
			t.Fatalf("offset %.1f: column %d at [%.1f, %.1f) is on screen but not materialized: %v", offset, i, x, x+w, m.VisibleColumns())
		}
	}
}
