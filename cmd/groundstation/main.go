// Command groundstation is the desktop companion tool: it subscribes to
// the controller's MQTT telemetry topic and prints each line, and lets an
// operator publish settings commands to a command topic. The onboard
// controller in cmd/cablecam does not subscribe to that topic; it reads
// settings commands only from its USB console. It is off-board — not part of the control cycle — so the
// full-size paho.mqtt.golang client is appropriate here even though the
// onboard controller itself uses the allocation-free natiu-mqtt client
// (SPEC_FULL §B).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	telemetryTopic := flag.String("telemetry-topic", "cablecam/telemetry", "topic the controller publishes telemetry to")
	commandTopic := flag.String("command-topic", "cablecam/command", "topic to publish settings commands to")
	flag.Parse()

	opts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID("cablecam-groundstation").
		SetAutoReconnect(true)

	opts.SetDefaultPublishHandler(func(_ mqtt.Client, msg mqtt.Message) {
		fmt.Println(string(msg.Payload()))
	})

	client := mqtt.NewClient(opts)
	if tok := client.Connect(); tok.Wait() && tok.Error() != nil {
		fmt.Fprintln(os.Stderr, "connect:", tok.Error())
		os.Exit(1)
	}
	defer client.Disconnect(250)

	if tok := client.Subscribe(*telemetryTopic, 0, nil); tok.Wait() && tok.Error() != nil {
		fmt.Fprintln(os.Stderr, "subscribe:", tok.Error())
		os.Exit(1)
	}

	go readCommands(client, *commandTopic)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}

// readCommands forwards operator-typed lines on stdin (e.g. "set pid 1.0
// 0.5 0.1") to the command topic.
func readCommands(client mqtt.Client, topic string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tok := client.Publish(topic, 0, false, line)
		tok.Wait()
		if err := tok.Error(); err != nil {
			fmt.Fprintln(os.Stderr, "publish:", err)
		}
	}
}
