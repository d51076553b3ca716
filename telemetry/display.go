//go:build tinygo

package telemetry

import (
	"strconv"

	"tinygo.org/x/drivers/sharpmem"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"

	"github.com/cablecam-io/controller/cablecam"
)

// Display is a compact onboard telemetry sink for operators without a
// laptop: a character console on an attached SPI/I2C display, refreshed at
// the same 1 Hz gate as the other sinks. It renders the safemode, the
// monitor state and the position, not the full spec §6 line (the physical display is a few
// rows of fixed-width glyphs, not a terminal).
type Display struct {
	term *tinyterm.Terminal
}

// NewDisplay creates a Display sink over an already-configured tinyterm
// terminal (itself backed by a tinyfont-compatible drawable display).
func NewDisplay(term *tinyterm.Terminal) *Display {
	return &Display{term: term}
}

// NewSharpmemTerminal wires a Sharp Memory LCD up as the tinyterm console
// NewDisplay expects: dev must already have Configure called on it. This is
// the field-operator display path spec §4.6 asks for when there's no laptop
// attached, using the driver's diffed-line transfer so the 1 Hz refresh
// never stalls the control cycle waiting on SPI.
func NewSharpmemTerminal(dev *sharpmem.Device) *tinyterm.Terminal {
	return tinyterm.NewTerminal(dev)
}

// Emit implements cablecam.Sink.
func (d *Display) Emit(snap cablecam.Snapshot) {
	d.term.SetFont(tinyfont.Org01)
	d.term.ClearDisplay()
	_, _ = d.term.Write([]byte(snap.SafeMode.String() + " " + snap.Monitor.String() + "\n"))
	_, _ = d.term.Write([]byte("pos " + strconv.Itoa(int(snap.Pos)) + "\n"))
}
