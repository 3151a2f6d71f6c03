package strip

import (
	"github.com/robinovitch61/hcols/internal/columnview"
	"math"
)

// surface is the terminal implementation of columnview.ScrollSurface. It also carries the drag and deceleration state
// of the strip, since those are properties of the scroll container rather than of the columns
type surface struct {
	offset       columnview.Length
	contentWidth columnview.Length

	// width and height are the size of the strip in terminal cells
	width, height int

	paging bool

	// subviews are the attached column views in attach order
	subviews []columnview.View

	taps map[columnview.View]func(columnview.View)

	// dragging is true between a left button press and release
	dragging bool

	// dragMoved is true once the current press has moved, so the release is a drag rather than a tap
	dragMoved bool

	lastMouseX int

	// velocity is in cells per frame, positive when content moves left
	velocity float64

	decelerating bool

	// selections collects the columns tapped during the current Update
	selections []int

	lastStop columnview.Stats
}

func newSurface(width, height int) *surface {
	return &surface{
		width:  max(0, width),
		height: max(0, height),
		taps:   make(map[columnview.View]func(columnview.View)),
	}
}

func (s *surface) Offset() columnview.Length {
	return s.offset
}

func (s *surface) SetOffset(offset columnview.Length) {
	s.offset = s.clamp(offset)
}

func (s *surface) ViewportWidth() columnview.Length {
	return columnview.Length(s.width)
}

func (s *surface) SetContentWidth(width columnview.Length) {
	s.contentWidth = max(0, width)
	s.offset = s.clamp(s.offset)
}

func (s *surface) AddSubview(v columnview.View) {
	s.subviews = append(s.subviews, v)
}

func (s *surface) RemoveSubview(v columnview.View) {
	for i := range s.subviews {
		if s.subviews[i] == v {
			s.subviews = append(s.subviews[:i], s.subviews[i+1:]...)
			return
		}
	}
}

func (s *surface) BindTap(v columnview.View, handler func(columnview.View)) {
	if _, ok := s.taps[v]; ok {
		return
	}
	s.taps[v] = handler
}

func (s *surface) SetPagingEnabled(enabled bool) {
	s.paging = enabled
}

// maxOffset is the largest offset that still fills the viewport, or 0 if the content is narrower than the viewport
func (s *surface) maxOffset() columnview.Length {
	return max(0, s.contentWidth-columnview.Length(s.width))
}

func (s *surface) clamp(offset columnview.Length) columnview.Length {
	if math.IsNaN(offset) {
		return 0
	}
	return max(0, min(s.maxOffset(), offset))
}

// pageTarget returns the page boundary to settle on after a drag released with the given velocity
func (s *surface) pageTarget(velocity float64) columnview.Length {
	if s.width == 0 {
		return s.offset
	}
	pageWidth := columnview.Length(s.width)
	page := s.offset / pageWidth
	switch {
	case velocity > 0:
		page = math.Ceil(page)
	case velocity < 0:
		page = math.Floor(page)
	default:
		page = math.Round(page)
	}
	return s.clamp(page * pageWidth)
}

// viewAt returns the attached view under content coordinate x
func (s *surface) viewAt(x columnview.Length) columnview.View {
	for _, v := range s.subviews {
		f := v.Frame()
		if f.X <= x && x < f.MaxX() {
			return v
		}
	}
	return nil
}

// tap delivers a tap at content coordinate x to whichever view is there
func (s *surface) tap(x columnview.Length) {
	v := s.viewAt(x)
	if v == nil {
		return
	}
	if handler, ok := s.taps[v]; ok {
		handler(v)
	}
}
