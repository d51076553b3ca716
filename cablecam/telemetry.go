package cablecam

// Snapshot is the set of fields the 1 Hz telemetry line is built from
// (spec §4.6/§6). The frame timestamp is supplied by the caller's Sink
// implementation, not by Tick, since the control cycle has no clock of its
// own.
type Snapshot struct {
	RawSpeed      uint16
	SafeMode      SafeMode
	Stick         int32
	Speed         float64
	BrakeDistance float64
	Monitor       Monitor
	Pos           int32
}

// Sink receives one Snapshot per telemetry gate (nominally 1 Hz). Emit must
// not block: a sink backed by a channel or buffer should drop the line
// rather than stall the control cycle, matching spec §4.6.
type Sink interface {
	Emit(Snapshot)
}
