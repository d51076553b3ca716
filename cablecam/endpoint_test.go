package cablecam

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func Test_learnEndpoints_firstClickRecordsStart(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	ctl := NewController()
	ctl.safemode = Programming
	ctl.lastEndpointSwitch = 1100

	ctl.learnEndpoints(cfg, 1300, 4242)

	c.Assert(cfg.PosStart, qt.Equals, int32(4242))
	c.Assert(ctl.endpointClicks, qt.Equals, uint8(1))
}

func Test_learnEndpoints_secondClickOrdersStartBeforeEnd(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	ctl := NewController()
	ctl.safemode = Programming

	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 5000)
	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 9000)

	c.Assert(cfg.PosStart, qt.Equals, int32(5000))
	c.Assert(cfg.PosEnd, qt.Equals, int32(9000))
}

func Test_learnEndpoints_secondClickBelowFirstSwapsStartAndEnd(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	ctl := NewController()
	ctl.safemode = Programming

	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 9000)
	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 5000)

	c.Assert(cfg.PosStart, qt.Equals, int32(5000))
	c.Assert(cfg.PosEnd, qt.Equals, int32(9000))
	c.Assert(cfg.PosStart <= cfg.PosEnd, qt.IsTrue)
}

func Test_learnEndpoints_thirdClickKeepsRefiningSecondEnd(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	ctl := NewController()
	ctl.safemode = Programming

	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 5000) // click 1: start=5000
	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 9000) // click 2: end=9000
	ctl.lastEndpointSwitch = 1100
	ctl.learnEndpoints(cfg, 1300, 7000) // click 3: still "second" click behavior

	c.Assert(ctl.endpointClicks, qt.Equals, uint8(1))
	c.Assert(cfg.PosStart, qt.Equals, int32(5000))
	c.Assert(cfg.PosEnd, qt.Equals, int32(7000))
}

func Test_learnEndpoints_requiresRisingEdge(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	ctl := NewController()
	ctl.safemode = Programming

	ctl.lastEndpointSwitch = 1300 // already high, not a rising edge
	ctl.learnEndpoints(cfg, 1400, 1234)
	c.Assert(ctl.endpointClicks, qt.Equals, uint8(0))

	ctl.lastEndpointSwitch = 0 // stale channel guard
	ctl.learnEndpoints(cfg, 1400, 1234)
	c.Assert(ctl.endpointClicks, qt.Equals, uint8(0))
}

func Test_learnEndpoints_onlyRunsWhileProgramming(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	ctl := NewController()
	ctl.safemode = Operational
	ctl.lastEndpointSwitch = 1100

	ctl.learnEndpoints(cfg, 1300, 4242)

	c.Assert(ctl.endpointClicks, qt.Equals, uint8(0))
	c.Assert(ctl.lastEndpointSwitch, qt.Equals, uint16(1300))
}
