//go:build tinygo

package esc

import "tinygo.org/x/drivers/tmc2209"

// TMC2209Velocity is the lower-cost counterpart to TMC5160Velocity: it
// drives a stepper's VACTUAL register directly over the TMC2209's UART
// interface instead of the TMC5160's ramp generator, for installs that
// don't need closed-loop current regulation.
type TMC2209Velocity struct {
	driver *tmc2209.TMC2209
}

// NewTMC2209Velocity creates an Output backed by an already-Setup TMC2209.
func NewTMC2209Velocity(driver *tmc2209.TMC2209) *TMC2209Velocity {
	return &TMC2209Velocity{driver: driver}
}

// Write implements Output. VACTUAL is a signed 24-bit field in units of
// step-clock increments; v (the unsaturated esc_output) is written directly
// into it, sign and all, since VACTUAL's own sign bit already encodes
// direction.
func (t *TMC2209Velocity) Write(v int32) error {
	return t.driver.WriteRegister(tmc2209.VACTUAL, uint32(v)&0xFFFFFF)
}
