//go:build tinygo

package telemetry

import (
	mqtt "github.com/soypat/natiu-mqtt"

	"github.com/cablecam-io/controller/cablecam"
)

// CustomError is a lightweight error type, mirroring tmc2209.CustomError.
type CustomError string

func (e CustomError) Error() string { return string(e) }

// MQTT publishes the same wire-format line Serial writes, over an
// already-connected natiu-mqtt client, onto topic. natiu-mqtt's
// allocation-free PUBLISH encoding is what makes this safe to call from the
// no-heap control task's telemetry gate (SPEC_FULL §B); a connection drop
// degrades to a dropped line, never a blocked Emit.
type MQTT struct {
	client *mqtt.Client
	topic  string
	buf    [256]byte
}

// NewMQTT creates an MQTT sink publishing to topic over client.
func NewMQTT(client *mqtt.Client, topic string) *MQTT {
	return &MQTT{client: client, topic: topic}
}

// Emit implements cablecam.Sink.
func (m *MQTT) Emit(snap cablecam.Snapshot) {
	if m.client == nil || !m.client.IsConnected() {
		return
	}
	line := formatLine(0, snap)
	n := copy(m.buf[:], line)

	var pbh mqtt.PublishHeader
	pbh.QoS = mqtt.QoS0
	pbh.SetDup(false)
	_ = m.client.PublishPayload(pbh, m.topic, m.buf[:n])
}
