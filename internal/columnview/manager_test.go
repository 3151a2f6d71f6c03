package columnview

import (
	"testing"
)

func TestManager_ReloadMaterializesViewport(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(5, 100), 300)
	m.Reload(false)

	// the column starting exactly at the right edge is included as a one-column prefetch
	cmpInts(t, []int{0, 1, 2, 3}, m.VisibleColumns())
	for i, v := range m.VisibleViews() {
		if want := Length(i * 100); v.Frame().X != want || v.Frame().Width != 100 {
			t.Errorf("column %d: expected frame {%v 100}, got %+v", i, want, v.Frame())
		}
	}
	if surface.contentWidth != 500 {
		t.Errorf("expected content width 500, got %v", surface.contentWidth)
	}
	if m.Margin() != 2 {
		t.Errorf("expected margin 2, got %d", m.Margin())
	}
	checkInvariants(t, m, surface)
}

func TestManager_ReloadThenZeroOffsetIsIdempotent(t *testing.T) {
	for _, tc := range []struct {
		name          string
		widths        []Length
		viewportWidth Length
	}{
		{"aligned", []Length{100, 100, 100, 100, 100}, 300},
		{"unaligned", []Length{100, 100, 100, 100, 100}, 250},
		{"mixed", []Length{100, 150, 200, 100, 150, 200, 100}, 320},
		{"narrow columns", []Length{30, 40, 50, 30, 40, 50, 30, 40, 50, 30}, 100},
		{"single", []Length{100}, 300},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, surface, _ := newTestManager(&testSource{widths: tc.widths, identifier: "A"}, tc.viewportWidth)
			m.Reload(false)
			m.OnOffsetChanged(0)
			before := m.VisibleColumns()
			m.OnOffsetChanged(0)
			cmpInts(t, before, m.VisibleColumns())
			checkInvariants(t, m, surface)
			checkCovers(t, m, 0, tc.viewportWidth)
		})
	}
}

func TestManager_ReloadThenZeroOffsetKeepsReloadWindow(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(5, 100), 300)
	m.Reload(false)
	reloaded := m.VisibleColumns()
	m.OnOffsetChanged(0)
	cmpInts(t, reloaded, m.VisibleColumns())
	checkInvariants(t, m, surface)
}

func TestManager_ScrollKeepsMarginBeforeDropping(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(5, 100), 300)
	m.Reload(false)

	surface.offset = 50
	m.OnOffsetChanged(50)
	// column 0 is still partly on screen
	cmpInts(t, []int{0, 1, 2, 3}, m.VisibleColumns())

	surface.offset = 150
	m.OnOffsetChanged(150)
	// column 0 ends at 100, left of the offset, and column 1 has started scrolling out
	cmpInts(t, []int{1, 2, 3, 4}, m.VisibleColumns())
	checkInvariants(t, m, surface)

	surface.offset = 0
	m.OnOffsetChanged(0)
	cmpInts(t, []int{0, 1, 2, 3}, m.VisibleColumns())
	checkInvariants(t, m, surface)
}

func TestManager_SweepInvariants(t *testing.T) {
	for count := 0; count <= 40; count += 3 {
		widths := make([]Length, count)
		for i := range widths {
			widths[i] = Length(10 + (i*7)%23)
		}
		for _, viewportWidth := range []Length{25, 60, 200} {
			m, surface, _ := newTestManager(&testSource{widths: widths, identifier: "A"}, viewportWidth)
			m.Reload(false)
			checkInvariants(t, m, surface)

			maxOffset := max(0, m.Geometry().TotalWidth()-viewportWidth)
			var offsets []Length
			for o := Length(0); o <= maxOffset; o += 3 {
				offsets = append(offsets, o)
			}
			offsets = append(offsets, maxOffset)
			for i := len(offsets) - 1; i >= 0; i -= 2 {
				offsets = append(offsets, offsets[i])
			}
			for _, offset := range offsets {
				surface.offset = offset
				m.OnOffsetChanged(offset)
				checkInvariants(t, m, surface)
				checkCovers(t, m, offset, viewportWidth)
			}
		}
	}
}

func TestManager_FlickWithinBoundsKeepsPartition(t *testing.T) {
	widths := make([]Length, 200)
	for i := range widths {
		widths[i] = Length(100 + (i%3)*50)
	}
	m, surface, constructed := newTestManager(&testSource{widths: widths, identifier: "A"}, 375)
	m.Reload(false)
	maxOffset := m.Geometry().TotalWidth() - 375
	for _, offset := range []Length{40, 380, 1200, 1210, 900, 5000, 12000, maxOffset, 7, 0} {
		surface.offset = min(offset, maxOffset)
		m.OnOffsetChanged(surface.offset)
		checkInvariants(t, m, surface)
		checkCovers(t, m, surface.offset, 375)
		stats := m.Stats()
		if stats.Visible+stats.Pooled != *constructed {
			t.Fatalf("offset %v: %d visible + %d pooled != %d constructed", offset, stats.Visible, stats.Pooled, *constructed)
		}
	}
}

func TestManager_JumpRecyclesInsteadOfConstructing(t *testing.T) {
	m, surface, constructed := newTestManager(uniformSource(1000, 10), 50)
	m.Reload(false)
	if *constructed != 6 {
		t.Fatalf("expected 6 constructions after reload, got %d", *constructed)
	}
	if m.Margin() != 3 {
		t.Fatalf("expected margin 3, got %d", m.Margin())
	}

	surface.offset = 9950
	m.OnOffsetChanged(9950)
	cmpInts(t, []int{993, 994, 995, 996, 997, 998, 999}, m.VisibleColumns())
	if *constructed != 8 {
		t.Errorf("expected 8 constructions after jumping to the end, got %d", *constructed)
	}
	checkInvariants(t, m, surface)
	checkCovers(t, m, 9950, 50)
}

func TestManager_ReloadReusesViews(t *testing.T) {
	m, surface, constructed := newTestManager(uniformSource(3, 50), 100)
	m.Reload(false)
	first := m.VisibleViews()
	if *constructed != 3 {
		t.Fatalf("expected 3 constructions, got %d", *constructed)
	}

	m.Reload(false)
	if *constructed != 3 {
		t.Errorf("expected reload to reuse pooled views, got %d constructions", *constructed)
	}
	reused := make(map[View]bool)
	for _, v := range first {
		reused[v] = true
	}
	for _, v := range m.VisibleViews() {
		if !reused[v] {
			t.Errorf("expected every view after reload to be recycled")
		}
	}
	if m.Pool().Len() != 0 {
		t.Errorf("expected empty pool, got %d", m.Pool().Len())
	}
	checkInvariants(t, m, surface)
}

func TestManager_ReloadResetToStart(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(20, 10), 50)
	surface.offset = 100
	m.Reload(false)
	cmpInts(t, []int{9, 10, 11, 12, 13, 14, 15}, m.VisibleColumns())

	m.Reload(true)
	if surface.offset != 0 {
		t.Errorf("expected offset reset to 0, got %v", surface.offset)
	}
	cmpInts(t, []int{0, 1, 2, 3, 4, 5}, m.VisibleColumns())
	checkInvariants(t, m, surface)
}

func TestManager_ReloadAfterDataChange(t *testing.T) {
	source := uniformSource(10, 100)
	m, surface, _ := newTestManager(source, 300)
	m.Reload(false)
	source.widths = []Length{50, 50}
	m.Reload(false)
	cmpInts(t, []int{0, 1}, m.VisibleColumns())
	if surface.contentWidth != 100 {
		t.Errorf("expected content width 100, got %v", surface.contentWidth)
	}
	if m.Margin() != 4 {
		t.Errorf("expected margin 4, got %d", m.Margin())
	}
	checkInvariants(t, m, surface)
}

func TestManager_NoColumns(t *testing.T) {
	m, surface, _ := newTestManager(&testSource{identifier: "A"}, 300)
	m.Reload(false)
	m.OnOffsetChanged(0)
	m.OnOffsetChanged(40)
	if len(m.VisibleColumns()) != 0 {
		t.Errorf("expected nothing materialized, got %v", m.VisibleColumns())
	}
	if m.Margin() != 2 {
		t.Errorf("expected margin 2, got %d", m.Margin())
	}
	if surface.contentWidth != 0 {
		t.Errorf("expected content width 0, got %v", surface.contentWidth)
	}
}

func TestManager_UnregisteredIdentifierDegrades(t *testing.T) {
	source := uniformSource(4, 100)
	source.identifier = "missing"
	m, surface, constructed := newTestManager(source, 200)
	m.Reload(false)
	for _, v := range m.VisibleViews() {
		if _, ok := v.(*Placeholder); !ok {
			t.Errorf("expected placeholder, got %T", v)
		}
	}
	m.Reload(false)
	if *constructed != 0 || m.Pool().Len() != 0 {
		t.Errorf("expected placeholders to be neither constructed nor pooled")
	}
	checkInvariants(t, m, surface)
}

type sameViewSource struct {
	*testSource
	view *testCell
}

func (s sameViewSource) CellView(_ Dequeuer, _ int) View {
	return s.view
}

func TestManager_SameViewReturnedTwiceIsNotDoubleMaterialized(t *testing.T) {
	src := sameViewSource{testSource: uniformSource(3, 100), view: &testCell{}}
	surface := newTestSurface(300)
	m := New(surface, src)
	m.Reload(false)
	views := m.VisibleViews()
	if len(views) != 3 || views[0] != src.view {
		t.Fatalf("expected the shared view first, got %v", views)
	}
	for _, v := range views[1:] {
		if _, ok := v.(*Placeholder); !ok {
			t.Errorf("expected later columns to get placeholders, got %T", v)
		}
	}
}

func TestManager_TapSelectsColumn(t *testing.T) {
	var selected []int
	m, surface, _ := newTestManager(uniformSource(20, 10), 50, WithSelectHandler(func(column int) {
		selected = append(selected, column)
	}))
	surface.offset = 60
	m.Reload(false)

	var target View
	for _, v := range m.VisibleViews() {
		if v.(*testCell).column == 7 {
			target = v
		}
	}
	if target == nil {
		t.Fatalf("expected column 7 to be materialized, got %v", m.VisibleColumns())
	}
	surface.tap(target)
	cmpInts(t, []int{7}, selected)
}

func TestManager_TapWithoutHandler(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(3, 10), 50)
	m.Reload(false)
	surface.tap(m.VisibleViews()[0])
}

func TestManager_BindsTapOncePerView(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(3, 50), 100)
	m.Reload(false)
	m.Reload(false)
	if len(surface.taps) != 3 {
		t.Errorf("expected 3 bound views, got %d", len(surface.taps))
	}
	if surface.bindCalls != 6 {
		t.Errorf("expected BindTap on every materialization, got %d", surface.bindCalls)
	}
}

func TestManager_PagingForwarded(t *testing.T) {
	m, surface, _ := newTestManager(uniformSource(3, 50), 100)
	m.SetPagingEnabled(true)
	if !surface.paging || !m.PagingEnabled() {
		t.Errorf("expected paging enabled on manager and surface")
	}
	m.SetPagingEnabled(false)
	if surface.paging || m.PagingEnabled() {
		t.Errorf("expected paging disabled on manager and surface")
	}
}

func TestManager_StopHandler(t *testing.T) {
	var stops []Stats
	m, _, _ := newTestManager(uniformSource(5, 100), 300, WithStopHandler(func(s Stats) {
		stops = append(stops, s)
	}))
	m.Reload(false)
	m.OnOffsetChanged(150)

	m.OnDragEnded(true)
	if len(stops) != 0 {
		t.Fatalf("expected no stop while decelerating, got %d", len(stops))
	}
	m.OnDecelerateEnded()
	m.OnDragEnded(false)
	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}
	if stops[0] != (Stats{Visible: 4, Pooled: 1, Constructed: 5}) {
		t.Errorf("unexpected stats %+v", stops[0])
	}
}
