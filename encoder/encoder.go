// Package encoder exposes the signed cumulative position counter Tick's
// Inputs.Encoder is sampled from. This is out of scope for the control
// cycle itself (spec §1); the core only ever sees the resulting int32.
package encoder

// Source is the position counter the control cycle samples once per cycle.
type Source interface {
	// Count returns the signed cumulative position in encoder units.
	Count() int32
}
