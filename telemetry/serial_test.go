package telemetry

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/cablecam-io/controller/cablecam"
)

func Test_Serial_Emit_matchesWireFormat(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	s := NewSerial(&buf)
	s.Frames = func() uint32 { return 42 }

	s.Emit(cablecam.Snapshot{
		RawSpeed:      1500,
		SafeMode:      cablecam.Operational,
		Stick:         123,
		Speed:         4.5,
		BrakeDistance: 6.75,
		Monitor:       cablecam.EndpointBrake,
		Pos:           9001,
	})

	want := "Time: 42  Raw: 1500  OPERATIONAL  Input: 123  Speed: 4.500  " +
		"Brakedistance: 6.750  ENDPOINTBRAKE  Pos: 9001\n"
	c.Assert(buf.String(), qt.Equals, want)
}

func Test_Serial_Emit_countsFramesWhenNoSourceGiven(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	s := NewSerial(&buf)

	s.Emit(cablecam.Snapshot{})
	c.Assert(buf.String(), qt.Equals, "Time: 1  Raw: 0  INVALID_RC  Input: 0  Speed: 0.000  Brakedistance: 0.000  FREE  Pos: 0\n")

	buf.Reset()
	s.Emit(cablecam.Snapshot{})
	c.Assert(buf.String(), qt.Equals, "Time: 2  Raw: 0  INVALID_RC  Input: 0  Speed: 0.000  Brakedistance: 0.000  FREE  Pos: 0\n")
}
