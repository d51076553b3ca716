//go:build tinygo

package rc

import "machine"

// CustomError is a lightweight error type, mirroring tmc2209.CustomError.
type CustomError string

func (e CustomError) Error() string { return string(e) }

// SBUS decodes a Futaba-style S.BUS stream (100000 baud, even parity, 2 stop
// bits, inverted) arriving on a UART into 16 channels of µs-equivalent pulse
// widths. Configure must be called once before Channel/Frame are read.
type SBUS struct {
	uart     *machine.UART
	buf      [sbusFrameLen]byte
	pos      int
	channels [numChannels]uint16
	frame    uint32
	failsafe bool
}

// NewSBUS creates an SBUS decoder reading from uart.
func NewSBUS(uart *machine.UART) *SBUS {
	return &SBUS{uart: uart}
}

// Configure sets the UART to S.BUS's 100000 baud. It sets only the baud
// rate; parity, stop bits and signal inversion are left as the UART already
// has them.
func (s *SBUS) Configure() error {
	if s.uart == nil {
		return CustomError("UART not initialized")
	}
	err := s.uart.Configure(machine.UARTConfig{BaudRate: 100000})
	if err != nil {
		return CustomError("failed to configure UART for SBUS")
	}
	return nil
}

// Poll drains whatever bytes are currently buffered in the UART and feeds
// them through the frame assembler. It is meant to be called from the same
// periodic task that drives Tick, ahead of sampling Inputs, so that a
// partial frame straddling two ticks is never torn.
func (s *SBUS) Poll() {
	for s.uart.Buffered() > 0 {
		b, err := s.uart.ReadByte()
		if err != nil {
			return
		}
		s.feed(b)
	}
}

func (s *SBUS) feed(b byte) {
	if s.pos == 0 && b != sbusStartByte {
		return
	}
	s.buf[s.pos] = b
	s.pos++
	if s.pos < sbusFrameLen {
		return
	}
	s.pos = 0
	if s.buf[sbusFrameLen-1] != sbusEndByte {
		return
	}
	s.channels, s.failsafe = decodeFrame(s.buf)
	s.frame++
}

// Channel implements Source. It returns 0 (stale/invalid) before the first
// frame and while the receiver reports failsafe, matching the "v == 0"
// invalid-frame path in spec §4.1. Frame age is not tracked: if frames stop
// arriving without a failsafe frame, the last decoded values keep being
// returned.
func (s *SBUS) Channel(c uint8) uint16 {
	if s.failsafe || int(c) >= numChannels {
		return 0
	}
	return s.channels[c]
}

// Frame implements Source.
func (s *SBUS) Frame() uint32 { return s.frame }
