package internal

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/hcols/internal/cell"
	"github.com/robinovitch61/hcols/internal/columnview"
	"github.com/robinovitch61/hcols/internal/dev"
	"github.com/robinovitch61/hcols/internal/strip"
	"github.com/robinovitch61/hcols/internal/style"
)

const (
	labelStripName = "labels"
	imageStripName = "images"
)

// namedStrip is a strip plus what the screen calls it
type namedStrip struct {
	name  string
	model strip.Model
	// title names a selected column of this strip for toasts and the clipboard
	title func(column int) string
}

func (m Model) initialize() (Model, error) {
	dev.Debug("initializing")
	defer dev.Debug("done initializing")
	dev.Debug("------------")
	style.DebugColors()

	if m.config.StripHeight <= 0 {
		return m, fmt.Errorf("strip height must be positive, got %d", m.config.StripHeight)
	}

	m.data = newDemoData(m.config)
	m.topBarHeight = lipgloss.Height(m.topBar())

	labels := strip.New(labelSource{data: m.data}, m.width, m.config.StripHeight, m.stripKeyMap)
	labels.FooterStyle = style.StripFooterStyle
	labels.Register(labelCellID, columnview.Class(cell.NewLabelCell))
	labels.SetPagingEnabled(m.config.Paging)

	images := strip.New(imageSource{data: m.data}, m.width, m.config.StripHeight, m.stripKeyMap)
	images.FooterStyle = style.StripFooterStyle
	images.Register(imageCellID, columnview.Template(cell.ImageTemplate{Art: m.data.art[0]}))

	m.strips = []namedStrip{
		{name: labelStripName, model: labels, title: labelTitle},
		{name: imageStripName, model: images, title: imageTitle},
	}
	m = m.withFocus(0)
	for i := range m.strips {
		m.strips[i].model.Reload(true)
	}

	m.initialized = true
	return m, nil
}
