//go:build tinygo

// Command cablecam runs the motion controller's 50 Hz control cycle on a
// TinyGo target: S.BUS R/C input, quadrature encoder, PWM ESC output, and
// serial + MQTT + onboard-display telemetry.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/sharpmem"

	"github.com/cablecam-io/controller/cablecam"
	"github.com/cablecam-io/controller/encoder"
	"github.com/cablecam-io/controller/esc"
	"github.com/cablecam-io/controller/rc"
	"github.com/cablecam-io/controller/settings"
	"github.com/cablecam-io/controller/telemetry"
)

func main() {
	cfg := &cablecam.Config{
		Mode:                  cablecam.ModeAbsolutePosition,
		StickNeutralPos:       1500,
		StickNeutralRange:     10,
		StickMaxAccel:         40,
		StickMaxSpeed:         500,
		StickMaxAccelSafemode: 10,
		StickMaxSpeedSafemode: 200,
		StickSpeedFactor:      1,
		MaxPositionError:      50,
	}

	store := settings.NewRAMStore()
	if persisted, err := store.Load(); err == nil {
		persisted.ApplyTo(cfg)
	}

	ctl := cablecam.NewController()

	sbus := rc.NewSBUS(machine.UART1)
	if err := sbus.Configure(); err != nil {
		println("sbus configure: " + err.Error())
	}

	quad := encoder.NewQuadrature(machine.GPIO2, machine.GPIO3)
	if err := quad.Configure(); err != nil {
		println("encoder configure: " + err.Error())
	}

	output := esc.NewPWM(machine.PWM0, 0, 20_000_000) // 50Hz ESC frame
	if err := output.Configure(); err != nil {
		println("esc configure: " + err.Error())
	}

	machine.UART0.Configure(machine.UARTConfig{BaudRate: 115200})
	serialSink := telemetry.NewSerial(machine.UART0)
	serialSink.Frames = sbus.Frame

	// mqttSink is left nil on builds with no network stack wired up; a
	// board with WiFi/ethernet brought up elsewhere passes its natiu-mqtt
	// client to telemetry.NewMQTT and assigns it here.
	var mqttSink *telemetry.MQTT

	lcdSPI := machine.SPI1
	lcdSPI.Configure(machine.SPIConfig{Frequency: 2_000_000, Mode: 0})
	lcdCS := machine.GPIO9
	lcdCS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd := sharpmem.New(lcdSPI, lcdCS)
	lcd.Configure(sharpmem.ConfigLS027B7DH01)
	displaySink := telemetry.NewDisplay(telemetry.NewSharpmemTerminal(&lcd))

	gate := telemetry.NewOneHzGate(50)
	cmds := settings.NewCommands(cfg, ctl)

	ticker := time.NewTicker(time.Duration(cablecam.Ta*1000) * time.Millisecond)
	for range ticker.C {
		sbus.Poll()

		in := cablecam.Inputs{
			Speed:       sbus.Channel(cfg.RcChannelSpeed),
			Programming: sbus.Channel(cfg.RcChannelProgramming),
			Endpoint:    sbus.Channel(cfg.RcChannelEndpoint),
			Encoder:     quad.Count(),
			OneHz:       gate.Due(sbus.Frame()),
		}

		out := ctl.Tick(cfg, in, multiSink{serialSink, mqttSink, displaySink})
		_ = output.Write(out)

		if in.OneHz && ctl.SafeMode() == cablecam.Programming {
			_ = store.Save(settings.Snapshot(cfg))
		}

		drainConsole(cmds)
	}
}

// multiSink fans a single Snapshot out to whichever sinks are non-nil.
type multiSink struct {
	serial  *telemetry.Serial
	mqtt    *telemetry.MQTT
	display *telemetry.Display
}

func (m multiSink) Emit(snap cablecam.Snapshot) {
	if m.serial != nil {
		m.serial.Emit(snap)
	}
	if m.mqtt != nil {
		m.mqtt.Emit(snap)
	}
	if m.display != nil {
		m.display.Emit(snap)
	}
}

// drainConsole reads one line at a time from the USB console, if any is
// waiting, and dispatches it as a settings command. This never blocks:
// Buffered reports 0 on an idle console.
func drainConsole(cmds *settings.Commands) {
	if machine.Serial.Buffered() == 0 {
		return
	}
	var line []byte
	for machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil || b == '\n' {
			break
		}
		line = append(line, b)
	}
	if len(line) == 0 {
		return
	}
	reply, err := cmds.Run(string(line))
	if err != nil {
		println("command error: " + err.Error())
		return
	}
	if reply != "" {
		println(reply)
	}
}
