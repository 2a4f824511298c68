// smspdu encodes an SMS-SUBMIT PDU and either prints the AT+CMGS framing or
// writes it once to a modem's serial port.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/tarm/serial"
)

type config struct {
	SMSC     string        `env:"SMSPDU_SMSC"      envDefault:""`
	Device   string        `env:"SMSPDU_DEVICE"    envDefault:""`
	Baud     int           `env:"SMSPDU_BAUD"      envDefault:"115200"`
	Validity time.Duration `env:"SMSPDU_VALIDITY"  envDefault:"240h"`
	LogLevel string        `env:"SMSPDU_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// opener opens a serial sink; tests replace it.
type opener func(name string, baud int) (io.WriteCloser, error)

func openSerial(name string, baud int) (io.WriteCloser, error) {
	return serial.OpenPort(&serial.Config{Name: name, Baud: baud, WriteTimeout: 2 * time.Second})
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %s\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, os.Stdout, os.Stderr, openSerial).Execute(); err != nil {
		os.Exit(1)
	}
}
