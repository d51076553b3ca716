//go:build tinygo

package esc

import "tinygo.org/x/drivers/tmc5160"

// TMC5160Velocity drives the carriage motor as a closed-loop stepper
// through a TMC5160 instead of a PWM ESC: direction is carried in the
// sign of v and magnitude is translated to the VMAX velocity register via
// Stepper.DesiredVelocityToVMAX, so installs with a geared stepper instead
// of a brushless motor+ESC reuse the exact same Tick output.
type TMC5160Velocity struct {
	driver  *tmc5160.Driver
	stepper tmc5160.Stepper
}

// NewTMC5160Velocity creates an Output backed by an already-Begin'd TMC5160
// driver in velocity ramp mode.
func NewTMC5160Velocity(driver *tmc5160.Driver, stepper tmc5160.Stepper) *TMC5160Velocity {
	return &TMC5160Velocity{driver: driver, stepper: stepper}
}

// Write implements Output. v is the unsaturated esc_output from Tick; it is
// mapped onto a steps-per-second velocity (via the Stepper's gear/clock
// parameters) and written to VMAX, with RAMPMODE set from the sign of v.
func (t *TMC5160Velocity) Write(v int32) error {
	mode := tmc5160.VelocityPositiveMode
	if v < 0 {
		mode = tmc5160.VelocityNegativeMode
		v = -v
	}
	if err := t.driver.WriteRegister(tmc5160.RAMPMODE, uint32(mode)); err != nil {
		return err
	}
	t.stepper.VelocitySPS = float32(v)
	vmax := t.stepper.DesiredVelocityToVMAX(t.stepper.VelocitySPS)
	return t.driver.WriteRegister(tmc5160.VMAX, vmax)
}
