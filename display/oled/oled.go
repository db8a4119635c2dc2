// Package oled draws panel content on a monochrome framebuffer display such
// as the SSD1306: text rows with tinyfont and the marker with tinydraw.
// Drawing only touches the buffer; Flush pushes it to the glass.
package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"envpanel/errcode"
)

const (
	// RowHeight is the pixel height of one text row.
	RowHeight = 10
	// baseline is the offset from a row's top edge to the font baseline.
	baseline = 8
)

var on = color.RGBA{255, 255, 255, 255}

// Device is a buffered display: the SSD1306 driver and fb.Buffer both fit.
type Device interface {
	drivers.Displayer
	ClearBuffer()
}

// Panel adapts a Device to the row/marker drawing the panel loop uses.
type Panel struct {
	dev  Device
	font tinyfont.Fonter
}

// New returns a Panel drawing on dev with the 6 px proggy font.
func New(dev Device) *Panel {
	return &Panel{dev: dev, font: &proggy.TinySZ8pt7b}
}

// Width returns the addressable width in pixels.
func (p *Panel) Width() int {
	w, _ := p.dev.Size()
	return int(w)
}

// Clear blanks the buffer.
func (p *Panel) Clear() { p.dev.ClearBuffer() }

// DrawText writes text left-aligned on the given row.
func (p *Panel) DrawText(row int, text string) {
	y := int16(row*RowHeight + baseline)
	tinyfont.WriteLine(p.dev, p.font, 0, y, text, on)
}

// DrawMarker draws a size x size outlined square with its top-left at (x, y).
// Parts outside the display are clipped by the device.
func (p *Panel) DrawMarker(x, y, size int) {
	if size <= 0 {
		return
	}
	_ = tinydraw.Rectangle(p.dev, int16(x), int16(y), int16(size), int16(size), on)
}

// Flush pushes the buffer to the display.
func (p *Panel) Flush() error {
	return errcode.Wrap(errcode.DisplayWrite, "flush", p.dev.Display())
}
