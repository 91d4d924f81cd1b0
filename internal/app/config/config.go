package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	PendingFile   string `env:"ORDERS_FILE"`
	FulfilledFile string `env:"FULFILLED_ORDERS_FILE"`
	LogLevel      string `env:"LOG_LEVEL"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.PendingFile, "i", "orders.json", "path to the pending orders file")
	flag.StringVar(&config.FulfilledFile, "o", "output_orders.json", "path to the fulfilled orders file")
	flag.StringVar(&config.LogLevel, "l", "error", "log level")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
