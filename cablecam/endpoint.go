package cablecam

// learnEndpoints runs the teach-and-learn endpoint programmer. It only
// learns while Programming, on a rising edge of the endpoint-switch
// channel (current > 1200, last <= 1200, last != 0 — the != 0 guard
// suppresses false edges off a channel that was stale last cycle).
//
// The first click records pos_start. Every click after that re-partitions
// start/end around whichever side of pos_start the new point falls on;
// endpointClicks intentionally stays at 1, so a third or fourth click keeps
// refining the non-frozen end rather than requiring a fresh programming
// entry (see the open question in DESIGN.md).
func (c *Controller) learnEndpoints(cfg *Config, endpointRaw uint16, encoder int32) {
	if c.safemode == Programming && endpointRaw > 1200 && c.lastEndpointSwitch <= 1200 && c.lastEndpointSwitch != 0 {
		p := encoder
		if c.endpointClicks == 0 {
			cfg.PosStart = p
			c.endpointClicks = 1
		} else if cfg.PosStart < p {
			cfg.PosEnd = p
		} else {
			cfg.PosEnd = cfg.PosStart
			cfg.PosStart = p
		}
	}
	c.lastEndpointSwitch = endpointRaw
}
