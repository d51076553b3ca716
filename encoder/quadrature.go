//go:build tinygo

package encoder

import (
	"machine"
	"runtime/volatile"
)

// CustomError is a lightweight error type, mirroring tmc2209.CustomError.
type CustomError string

func (e CustomError) Error() string { return string(e) }

// Quadrature counts edges on a two-channel incremental rotary/linear encoder
// wired to two GPIO pins, direction resolved from the phase relationship
// between A and B. Count is updated entirely from pin interrupts so Source
// reads never block or touch the pins directly.
type Quadrature struct {
	a, b  machine.Pin
	count volatile.Register32
	last  uint8
}

// NewQuadrature creates a quadrature counter on pins a and b.
func NewQuadrature(a, b machine.Pin) *Quadrature {
	return &Quadrature{a: a, b: b}
}

// Configure sets both pins as pulled-up inputs and arms interrupts on every
// edge of channel A (the common "one interrupt, sample both" quadrature
// decode, cheapest on a part with limited external interrupt lines).
func (q *Quadrature) Configure() error {
	q.a.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	q.b.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	err := q.a.SetInterrupt(machine.PinRising|machine.PinFalling, q.onEdge)
	if err != nil {
		return CustomError("failed to arm quadrature interrupt")
	}
	q.last = q.phase()
	return nil
}

func (q *Quadrature) phase() uint8 {
	var p uint8
	if q.a.Get() {
		p |= 0x1
	}
	if q.b.Get() {
		p |= 0x2
	}
	return p
}

// onEdge runs in interrupt context on every edge of channel A: read both
// pins and bump count by +1 when A and B differ right after the edge, or by
// -1 when they match (the two directions of the quadrature phase shift).
func (q *Quadrature) onEdge(machine.Pin) {
	cur := q.phase()
	if (cur&0x1 != 0) != (cur&0x2 != 0) {
		q.count.Set(uint32(int32(q.count.Get()) + 1))
	} else {
		q.count.Set(uint32(int32(q.count.Get()) - 1))
	}
	q.last = cur
}

// Count implements Source.
func (q *Quadrature) Count() int32 {
	return int32(q.count.Get())
}
