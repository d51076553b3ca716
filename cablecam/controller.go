// Package cablecam implements the fixed-period control cycle for a
// cable-suspended camera carriage: R/C stick conditioning, a teach-and-learn
// endpoint programmer, a predictive endpoint brake, and an absolute-position
// PID in discrete velocity form.
//
// Tick is meant to be called once per 50 Hz timer tick to completion; it
// never blocks and never allocates. Everything it needs (R/C channel pulse
// widths, encoder count, the 1 Hz telemetry gate) is sampled by the caller
// into an Inputs value before the call, matching the external-collaborator
// boundary described for getDuty/ENCODER_VALUE/is1Hz.
package cablecam

// Inputs is one cycle's consistent snapshot of the external collaborators:
// the R/C channel table, the encoder counter, and the 1 Hz telemetry gate.
type Inputs struct {
	// Speed is the raw pulse width (µs, 1000-2000, or 0 for stale/absent)
	// of the speed-stick channel.
	Speed uint16
	// Programming is the raw pulse width of the programming-mode switch
	// channel.
	Programming uint16
	// Endpoint is the raw pulse width of the endpoint-teach switch
	// channel.
	Endpoint uint16
	// Encoder is the signed cumulative position count.
	Encoder int32
	// OneHz is true on exactly one cycle per second; gates telemetry.
	OneHz bool
}

// Controller owns every piece of runtime state for the control cycle. There
// is exactly one owner (the periodic task); all mutation happens inside
// Tick. Getters below may be called between ticks by the settings surface.
type Controller struct {
	safemode SafeMode
	monitor  Monitor

	stickRequestedValue int32

	posCurrentOld int32
	posTarget     float64
	posTargetOld  float64
	speedOld      float64

	eK1, eK2, yK1 float64

	endpointClicks     uint8
	lastEndpointSwitch uint16
}

// NewController returns a Controller in its boot state (InvalidRc, every
// history term zero), mirroring the original's initController/global-init.
func NewController() *Controller {
	return &Controller{safemode: InvalidRc}
}

// SafeMode returns the current arming state.
func (c *Controller) SafeMode() SafeMode { return c.safemode }

// Monitor returns the reason code set during the most recent Tick.
func (c *Controller) Monitor() Monitor { return c.monitor }

// StickPosition returns the last conditioned stick value.
func (c *Controller) StickPosition() int32 { return c.stickRequestedValue }

// TargetPos returns the virtual absolute-position setpoint.
func (c *Controller) TargetPos() float64 { return c.posTarget }

// Speed returns the last speed estimate (position units per cycle).
func (c *Controller) Speed() float64 { return c.speedOld }

// Pos returns the last encoder sample seen by the control cycle (the
// original's getPos, SPEC_FULL §C.1).
func (c *Controller) Pos() int32 { return c.posCurrentOld }

// Tick runs one control cycle and returns the ESC command truncated from
// the double-precision accumulator. The value is conceptually a signed
// 16-bit quantity (spec's esc_output), but Tick does not saturate it — a
// badly tuned PID can still momentarily produce a y_k outside int16 range,
// and saturating that is the ESC driver's job (see package esc), not the
// control cycle's. cfg is read for limits/gains/endpoints and written by
// the endpoint programmer (PosStart/PosEnd) — callers that persist
// configuration across resets should snapshot cfg after any cycle where
// the safemode is Programming.
func (c *Controller) Tick(cfg *Config, in Inputs, sink Sink) int32 {
	c.monitor = Free // may be overwritten below; must be reset first

	forceZero := c.arbiter(cfg, in.Speed, in.Programming)

	brakeDistance := c.brakeDistance(cfg)

	var posForBrake float64
	if cfg.Mode == ModeAbsolutePosition {
		posForBrake = c.posTargetOld
	} else {
		posForBrake = float64(in.Encoder)
	}

	c.conditionStick(cfg, in.Speed, forceZero, posForBrake, brakeDistance)
	c.learnEndpoints(cfg, in.Endpoint, in.Encoder)

	escOutput := c.drivePlant(cfg, in.Encoder)

	if in.OneHz && sink != nil {
		sink.Emit(Snapshot{
			RawSpeed:      in.Speed,
			SafeMode:      c.safemode,
			Stick:         c.stickRequestedValue,
			Speed:         c.speedOld,
			BrakeDistance: brakeDistance,
			Monitor:       c.monitor,
			Pos:           in.Encoder,
		})
	}

	return escOutput
}
