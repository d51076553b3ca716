// Package telemetry provides concrete cablecam.Sink implementations: a
// serial line formatter matching spec §6's wire format, an MQTT publisher
// for the ground station link, and an onboard character-display sink.
package telemetry

// OneHzGate turns the R/C decoder's valid-frame counter into the "exactly
// once per second" gate spec §4.6/§6 calls is1Hz, per SPEC_FULL §C.6: a
// count of valid frames rather than a wall clock, so telemetry cadence
// tracks actual R/C activity instead of drifting while the link is down.
type OneHzGate struct {
	framesPerSecond uint32
	next            uint32
}

// NewOneHzGate creates a gate that fires once every framesPerSecond valid
// frames (nominally the R/C frame rate, e.g. 50 for a 50Hz S.BUS stream).
func NewOneHzGate(framesPerSecond uint32) *OneHzGate {
	return &OneHzGate{framesPerSecond: framesPerSecond, next: framesPerSecond}
}

// Due reports whether frame has reached the next 1 Hz boundary. A frame
// counter that resets backward (e.g. receiver reboot) re-arms the gate
// from the new count rather than firing a burst of catch-up lines.
func (g *OneHzGate) Due(frame uint32) bool {
	if g.framesPerSecond == 0 {
		return false
	}
	if frame < g.next {
		if frame+g.framesPerSecond < g.next {
			g.next = frame + g.framesPerSecond
		}
		return false
	}
	g.next = frame + g.framesPerSecond
	return true
}
