package internal

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/hcols/internal/cell"
	"github.com/robinovitch61/hcols/internal/color"
	"github.com/robinovitch61/hcols/internal/columnview"
)

const (
	labelCellID = "LabelCell"
	imageCellID = "ImageCell"
)

// demoData is shared by both strips' data sources, so swapping it and reloading changes what they show
type demoData struct {
	count   int
	unit    int
	palette color.Palette
	art     cell.Art
	// alternate is true once the data has been refreshed to the second set
	alternate bool
}

func newDemoData(c Config) *demoData {
	return &demoData{
		count:   max(0, c.Columns),
		unit:    max(1, c.UnitWidth),
		palette: color.PaletteA,
		art:     cell.ArtSetA,
	}
}

// toggle swaps between the initial and the refreshed data sets
func (d *demoData) toggle(c Config) {
	d.alternate = !d.alternate
	if d.alternate {
		d.count = max(0, c.RefreshColumns)
		d.palette = color.PaletteB
		d.art = cell.ArtSetB
	} else {
		d.count = max(0, c.Columns)
		d.palette = color.PaletteA
		d.art = cell.ArtSetA
	}
}

func (d *demoData) setName() string {
	if d.alternate {
		return "B"
	}
	return "A"
}

// labelSource feeds the top strip: titled columns one, one and a half or two units wide
type labelSource struct {
	data *demoData
}

func (s labelSource) ColumnCount() int {
	return s.data.count
}

func (s labelSource) ColumnWidth(column int) columnview.Length {
	unit := columnview.Length(s.data.unit)
	return unit + columnview.Length(column%3)*unit/2
}

func (s labelSource) CellView(d columnview.Dequeuer, column int) columnview.View {
	v := d.DequeueReusableCell(labelCellID)
	if c, ok := v.(*cell.LabelCell); ok {
		c.Title = labelTitle(column)
		c.Background = s.data.palette.At(column)
		c.Foreground = lipgloss.Color("#FFFFFF")
	}
	return v
}

// imageSource feeds the bottom strip: fixed width columns of ASCII art
type imageSource struct {
	data *demoData
}

func (s imageSource) ColumnCount() int {
	return s.data.count
}

func (s imageSource) ColumnWidth(int) columnview.Length {
	return columnview.Length(s.data.unit) * 3 / 2
}

func (s imageSource) CellView(d columnview.Dequeuer, column int) columnview.View {
	v := d.DequeueReusableCell(imageCellID)
	if c, ok := v.(*cell.ImageCell); ok {
		c.Art = s.data.art[column%len(s.data.art)]
	}
	return v
}

func labelTitle(column int) string {
	return fmt.Sprintf("Column %d", column+1)
}

func imageTitle(column int) string {
	return fmt.Sprintf("Column %d, image %d", column+1, column%len(cell.ArtSetA)+1)
}
