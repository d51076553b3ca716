// Package rc decodes a serial-bus R/C receiver frame into per-channel pulse
// widths, the format Tick's Inputs expects (µs, 1000-2000, or 0 for a stale
// or absent channel).
package rc

// Source is the channel table the control cycle samples once per cycle.
// Channel returns 0 for a stale or never-seen channel, matching Tick's
// "invalid frame" handling (spec §4.1/§7).
type Source interface {
	// Channel returns the pulse width in microseconds for a 0-indexed
	// channel, or 0 if no valid frame covering that channel has arrived.
	Channel(ch uint8) uint16
	// Frame returns the count of valid frames decoded so far. It only
	// increases; SPEC_FULL §C.6 uses it (via telemetry.OneHzGate) as the
	// frame-count-based 1 Hz gate instead of a wall clock, matching the
	// original source's sbusLastValidFrame bookkeeping.
	Frame() uint32
}
