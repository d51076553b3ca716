package cablecam

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func assertClose(c *qt.C, got, want float64) {
	c.Helper()
	c.Assert(math.Abs(got-want) < 1e-9, qt.IsTrue, qt.Commentf("got %v want %v", got, want))
}

func Test_drivePlant_absolutePositionStep(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	cfg.Mode = ModeAbsolutePosition
	cfg.MaxPositionError = 1
	cfg.SetPID(1, 0.5, 0.1)

	assertClose(c, cfg.q0, 6.01)
	assertClose(c, cfg.q1, -11.0)
	assertClose(c, cfg.q2, 5.0)

	ctl := NewController()
	ctl.safemode = Programming // skip the operational endpoint clamp
	ctl.posTarget = 2
	ctl.posTargetOld = 2
	ctl.stickRequestedValue = 0

	out := ctl.drivePlant(cfg, 0)
	c.Assert(out, qt.Equals, int32(12))
	c.Assert(ctl.Monitor(), qt.Equals, Free)
}

func Test_drivePlant_emergencyBrakeResetsHistory(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	cfg.Mode = ModeAbsolutePosition
	cfg.MaxPositionError = 100

	ctl := NewController()
	ctl.safemode = Programming
	ctl.posTarget = 50
	ctl.posTargetOld = 50
	ctl.stickRequestedValue = 0
	ctl.eK1, ctl.eK2, ctl.yK1 = 7, 8, 9

	out := ctl.drivePlant(cfg, 0)

	c.Assert(out, qt.Equals, int32(0))
	c.Assert(ctl.Monitor(), qt.Equals, EmergencyBrake)
	c.Assert(ctl.eK1, qt.Equals, 0.0)
	c.Assert(ctl.eK2, qt.Equals, 0.0)
	c.Assert(ctl.yK1, qt.Equals, 0.0)
}

func Test_drivePlant_zeroErrorHoldsOutput(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	cfg.Mode = ModeAbsolutePosition
	cfg.MaxPositionError = -1 // isolate the PID recurrence from the emergency gate for this property
	cfg.SetPID(1, 0.5, 0.1)

	ctl := NewController()
	ctl.safemode = Programming
	ctl.posTarget = 0
	ctl.posTargetOld = 0
	ctl.stickRequestedValue = 0
	ctl.yK1 = 17

	out := ctl.drivePlant(cfg, 0)
	c.Assert(out, qt.Equals, int32(17))
}

func Test_drivePlant_operationalClampsTargetToEndpoints(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	cfg.Mode = ModeAbsolutePosition
	cfg.PosStart, cfg.PosEnd = 0, 1000
	cfg.StickSpeedFactor = 1
	cfg.MaxPositionError = 10000 // stay in emergency-brake branch; we only assert the clamp

	ctl := NewController()
	ctl.safemode = Operational
	ctl.posTarget = 990
	ctl.posTargetOld = 990
	ctl.stickRequestedValue = 500

	ctl.drivePlant(cfg, 0)
	c.Assert(ctl.TargetPos(), qt.Equals, 1000.0)
}

func Test_drivePlant_nonAbsoluteModeUsesMeasuredEncoderDelta(t *testing.T) {
	c := qt.New(t)
	cfg := newTestConfig()
	cfg.Mode = ModeLimiter

	ctl := NewController()
	ctl.posCurrentOld = 1000
	ctl.stickRequestedValue = 33

	out := ctl.drivePlant(cfg, 970)
	c.Assert(out, qt.Equals, int32(33))
	c.Assert(ctl.Speed(), qt.Equals, 30.0)
}
