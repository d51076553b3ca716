package telemetry

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func Test_OneHzGate_firesEveryPeriod(t *testing.T) {
	c := qt.New(t)
	g := NewOneHzGate(50)

	var fires int
	for frame := uint32(0); frame < 200; frame++ {
		if g.Due(frame) {
			fires++
		}
	}
	c.Assert(fires, qt.Equals, 3) // fires at 50, 100, 150; boundary 0 and 200 excluded
}

func Test_OneHzGate_reArmsOnCounterReset(t *testing.T) {
	c := qt.New(t)
	g := NewOneHzGate(10)

	c.Assert(g.Due(10), qt.IsTrue)
	// receiver rebooted, frame counter restarted from 0
	for frame := uint32(0); frame < 10; frame++ {
		c.Assert(g.Due(frame), qt.IsFalse, qt.Commentf("frame=%d", frame))
	}
	c.Assert(g.Due(10), qt.IsTrue)
}
