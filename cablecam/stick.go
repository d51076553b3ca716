package cablecam

import "github.com/cablecam-io/controller/internal/clamp"

// conditionStick implements the deadband, endpoint-brake override,
// acceleration slew and absolute clamp, in that order (the order matters:
// slew-then-clamp lets a mode switch decelerate at the slower safemode
// rate instead of snapping).
func (c *Controller) conditionStick(cfg *Config, v uint16, forceZero bool, pos, brakeDistance float64) {
	var desired int32
	switch {
	case forceZero:
		desired = 0
	default:
		vi := int32(v) - cfg.StickNeutralPos
		switch {
		case vi > cfg.StickNeutralRange:
			desired = vi - cfg.StickNeutralRange
		case vi < -cfg.StickNeutralRange:
			desired = vi + cfg.StickNeutralRange
		default:
			desired = 0
		}
	}

	if cfg.Mode == ModePassthrough {
		c.stickRequestedValue = desired
		return
	}

	maxAccel, maxSpeed := cfg.StickMaxAccel, cfg.StickMaxSpeed
	if c.safemode != Operational {
		maxAccel, maxSpeed = cfg.StickMaxAccelSafemode, cfg.StickMaxSpeedSafemode
	}

	if cfg.Mode != ModeLimiter {
		switch {
		case pos+brakeDistance >= float64(cfg.PosEnd) && desired >= 0:
			desired = 0
			c.monitor = EndpointBrake
		case pos-brakeDistance <= float64(cfg.PosStart) && desired <= 0:
			desired = 0
			c.monitor = EndpointBrake
		}
	}

	diff := desired - c.stickRequestedValue
	switch {
	case diff > maxAccel:
		desired = c.stickRequestedValue + maxAccel
	case diff < -maxAccel:
		desired = c.stickRequestedValue - maxAccel
	}

	desired = clamp.Constrain(desired, -maxSpeed, maxSpeed)

	c.stickRequestedValue = desired
}
