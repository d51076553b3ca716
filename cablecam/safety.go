package cablecam

// arbiter maintains the InvalidRc -> Programming <-> Operational state
// machine and reports whether the stick conditioner must force its desired
// value to zero this cycle.
//
// Two conditions force zero without touching safemode: a stale/absent
// speed channel (v == 0), and a non-neutral stick observed for the first
// time while still InvalidRc (invariant I5 — the stick must start neutral).
// In both cases the programming-switch evaluation below is skipped
// entirely, so safemode is left exactly as it was.
func (c *Controller) arbiter(cfg *Config, v, p uint16) bool {
	if v == 0 {
		return true
	}

	if c.safemode == InvalidRc {
		lo := cfg.StickNeutralPos - cfg.StickNeutralRange
		hi := cfg.StickNeutralPos + cfg.StickNeutralRange
		vi := int32(v)
		if vi < lo || vi > hi {
			return true
		}
	}

	prev := c.safemode
	if p > 1200 {
		c.safemode = Operational
	} else {
		c.safemode = Programming
		if prev != Programming {
			c.endpointClicks = 0
		}
	}
	return false
}
