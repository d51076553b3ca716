package telemetry

import (
	"io"
	"strconv"

	"github.com/cablecam-io/controller/cablecam"
)

// Serial formats each Snapshot into the fixed compatibility-contract line
// from spec §6 and writes it to w. Emit never blocks on a slow writer
// beyond a single best-effort Write call; a write error is swallowed
// (there is no error channel back to the control cycle, per spec §7) and
// the line is simply dropped.
type Serial struct {
	w io.Writer
	// Frames, if set, supplies the "Time:" field (SPEC_FULL §C.6's valid
	// frame count rather than a wall clock). If nil, Serial counts its
	// own Emit calls instead.
	Frames func() uint32
	emits  uint32
}

// NewSerial creates a Serial sink writing to w (typically a UART).
func NewSerial(w io.Writer) *Serial {
	return &Serial{w: w}
}

// Emit implements cablecam.Sink.
func (s *Serial) Emit(snap cablecam.Snapshot) {
	var frame uint32
	if s.Frames != nil {
		frame = s.Frames()
	} else {
		s.emits++
		frame = s.emits
	}
	line := formatLine(frame, snap)
	_, _ = s.w.Write([]byte(line))
}

// formatLine renders the exact wire format spec §6 specifies:
// "Time: <frame>  Raw: <pulse>  <SAFEMODE>  Input: <stick>  Speed: <speed>
// Brakedistance: <d>  <MONITOR>  Pos: <encoder>"
func formatLine(frame uint32, snap cablecam.Snapshot) string {
	var b []byte
	b = append(b, "Time: "...)
	b = strconv.AppendUint(b, uint64(frame), 10)
	b = append(b, "  Raw: "...)
	b = strconv.AppendUint(b, uint64(snap.RawSpeed), 10)
	b = append(b, ' ', ' ')
	b = append(b, snap.SafeMode.String()...)
	b = append(b, "  Input: "...)
	b = strconv.AppendInt(b, int64(snap.Stick), 10)
	b = append(b, "  Speed: "...)
	b = strconv.AppendFloat(b, snap.Speed, 'f', 3, 64)
	b = append(b, "  Brakedistance: "...)
	b = strconv.AppendFloat(b, snap.BrakeDistance, 'f', 3, 64)
	b = append(b, ' ', ' ')
	b = append(b, snap.Monitor.String()...)
	b = append(b, "  Pos: "...)
	b = strconv.AppendInt(b, int64(snap.Pos), 10)
	b = append(b, '\n')
	return string(b)
}
