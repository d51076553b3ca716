//go:build tinygo

package esc

import (
	"machine"

	"github.com/cablecam-io/controller/internal/clamp"
)

// CustomError is a lightweight error type, mirroring tmc2209.CustomError.
type CustomError string

func (e CustomError) Error() string { return string(e) }

const (
	neutralUS = uint32(1500)
	spanUS    = uint32(500) // command int16 range maps onto 1000-2000us
)

// PWM drives a standard R/C-style ESC (1000-2000µs pulse at a low repeat
// rate, 1500µs neutral) from a hardware PWM peripheral.
type PWM struct {
	pwm     machine.PWM
	channel uint8
	period  uint32 // PWM period in nanoseconds
}

// NewPWM creates an ESC driver on the given PWM peripheral/channel.
func NewPWM(pwm machine.PWM, channel uint8, periodNs uint32) *PWM {
	return &PWM{pwm: pwm, channel: channel, period: periodNs}
}

// Configure initializes the PWM peripheral at the configured period.
func (p *PWM) Configure() error {
	err := p.pwm.Configure(machine.PWMConfig{Period: uint64(p.period)})
	if err != nil {
		return CustomError("failed to configure ESC PWM")
	}
	return nil
}

// Write implements Output. v is saturated to [-32768, 32767] (the ESC
// command's actual signed-16-bit range) before being mapped onto a
// 1000-2000µs duty cycle, so a momentarily out-of-range PID output never
// reaches the motor as a wrapped/aliased command.
func (p *PWM) Write(v int32) error {
	v = clamp.Constrain(v, int32(-32768), int32(32767))
	us := uint32(int32(neutralUS) + v*int32(spanUS)/32768)
	top := p.pwm.Top()
	duty := uint32(uint64(us) * uint64(top) / uint64(p.period/1000))
	p.pwm.Set(p.channel, duty)
	return nil
}
