package cablecam

// brakeDistance predicts, in encoder units, the distance required to
// decelerate the current commanded speed to zero at the configured
// deceleration. It is the discrete closed form for constant deceleration
// accel per cycle starting from speed_old.
//
// A zero or negative stick_max_accel is a configuration error; rather than
// divide by zero, brakeDistance treats it as "no prediction" and brakes
// immediately at the endpoint (returns 0), per spec §4.5/§7.
func (c *Controller) brakeDistance(cfg *Config) float64 {
	accel := float64(cfg.StickMaxAccel) * cfg.StickSpeedFactor
	if accel <= 0 {
		return 0
	}
	s := c.speedOld
	if s < 0 {
		s = -s
	}
	return s * (s - accel) / (2 * accel)
}

// drivePlant runs the absolute-position virtual target and PID (or, in
// Limiter/Passthrough, simply passes the conditioned stick through while
// tracking the measured encoder delta as the speed estimate).
func (c *Controller) drivePlant(cfg *Config, encoder int32) int32 {
	speedCurrent := c.posCurrentOld - encoder
	defer func() { c.posCurrentOld = encoder }()

	if cfg.Mode != ModeAbsolutePosition {
		c.speedOld = float64(speedCurrent)
		return c.stickRequestedValue
	}

	c.posTarget += float64(c.stickRequestedValue) * cfg.StickSpeedFactor
	if c.safemode == Operational {
		if c.posTarget > float64(cfg.PosEnd) {
			c.posTarget = float64(cfg.PosEnd)
		} else if c.posTarget < float64(cfg.PosStart) {
			c.posTarget = float64(cfg.PosStart)
		}
	}
	c.speedOld = c.posTarget - c.posTargetOld
	c.posTargetOld = c.posTarget

	e := c.posTarget - float64(encoder)

	// This predicate is inverted relative to its "cannot catch up"
	// rationale in the original source (it fires when the error is
	// small, not large). Preserved literally — see DESIGN.md.
	if e >= -cfg.MaxPositionError && e <= cfg.MaxPositionError {
		c.eK1, c.eK2, c.yK1 = 0, 0, 0
		c.monitor = EmergencyBrake
		return 0
	}

	y := c.yK1 + cfg.q0*e + cfg.q1*c.eK1 + cfg.q2*c.eK2
	c.eK2 = c.eK1
	c.eK1 = e
	c.yK1 = y

	return int32(y)
}
