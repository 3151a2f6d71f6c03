package columnview

// Length is a horizontal distance in the surface's units (terminal cells for the strip host)
type Length = float64

// Frame is the horizontal extent of a view in content coordinates
type Frame struct {
	X     Length
	Width Length
}

// MaxX returns the right edge of the frame
func (f Frame) MaxX() Length {
	return f.X + f.Width
}

// View is anything the manager can position on a ScrollSurface. Implementations must be pointer types, as views are
// tracked by identity in the pool and the visible set
type View interface {
	Frame() Frame
	SetFrame(Frame)
}

// Placeholder is the empty view handed out when a cell is dequeued with an identifier that was never registered
type Placeholder struct {
	frame Frame
}

func (p *Placeholder) Frame() Frame {
	return p.frame
}

func (p *Placeholder) SetFrame(f Frame) {
	p.frame = f
}

// assert Placeholder implements View
var _ View = &Placeholder{}

// ScrollSurface is the physical scroll container the manager lays columns out on
type ScrollSurface interface {
	// Offset is the current horizontal content offset
	Offset() Length
	// SetOffset moves the content offset without animation or offset-changed notification
	SetOffset(offset Length)
	// ViewportWidth is the visible width of the surface
	ViewportWidth() Length
	// SetContentWidth sets the total scrollable extent
	SetContentWidth(width Length)
	AddSubview(v View)
	RemoveSubview(v View)
	// BindTap registers handler for taps on v. Binding a view that already has a handler is a no-op
	BindTap(v View, handler func(View))
	SetPagingEnabled(enabled bool)
}

// Dequeuer hands out reusable cells by identifier
type Dequeuer interface {
	DequeueReusableCell(identifier string) View
}

// DataSource supplies the columns. CellView is expected to call d.DequeueReusableCell and bind content to the result
type DataSource interface {
	ColumnCount() int
	ColumnWidth(column int) Length
	CellView(d Dequeuer, column int) View
}

// Stats is a snapshot of how many views are on screen and how many are waiting in the pool
type Stats struct {
	Visible     int
	Pooled      int
	Constructed int
}
