package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	modbusClient "github.com/mehdieshraghi/modbus-MD-sensor/internal/client/modbus"
	modbusIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus"
	"github.com/mehdieshraghi/modbus-MD-sensor/internal/menu"
)

func main() {
	monitor := flag.Bool("monitor", false, "poll the sensor and publish readings to MQTT instead of showing the menu")
	flag.Parse()

	cfg, err := modbusClient.LoadEnvCfg()
	if err != nil {
		log.Fatal(err)
	}

	if *monitor {
		handler, err := InitMonitor(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := handler.Handle(); err != nil {
			log.Fatal(err)
		}
		return
	}

	open := func(port string, slaveID int) (modbusIface.Sensor, error) {
		c := cfg
		c.Port = port
		c.SlaveID = slaveID
		return InitSensor(c)
	}
	if err := menu.New(os.Stdin, os.Stdout, open, cfg.Port, cfg.SlaveID).Run(); err != nil {
		log.Fatal(err)
	}
}

// Handle connects to the sensor and publishes readings until SIGINT or SIGTERM.
func (h *MainHandler) Handle() error {
	defer func() {
		if err := h.MQTTClient.Close(250); err != nil {
			log.Printf("mqtt client close: %v", err)
		}
	}()

	if err := h.Sensor.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := h.Sensor.Disconnect(); err != nil {
			log.Printf("modbus disconnect: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("xymd01 monitor up; slave %d on %s every %ds", h.Sensor.SlaveID(), h.Cfg.Port, h.Cfg.IntervalSec)
	return h.Publisher.Run(ctx, time.Duration(h.Cfg.IntervalSec)*time.Second)
}
