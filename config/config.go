package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr            string `long:"http-addr" env:"HTTP_ADDR" default:":8080" description:"address the HTTP API listens on"`
	RedisAddr           string `long:"redis-addr" env:"REDIS_ADDR" description:"redis address used for commands and events"`
	JaegerEndpoint      string `long:"jaeger-endpoint" env:"JAEGER_ENDPOINT" description:"jaeger collector endpoint, traces are not exported when empty"`
	LogLevel            string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"logrus log level"`
	ServiceName         string `long:"service-name" env:"SERVICE_NAME" default:"ticketing" description:"service name used in traces"`
	ConsumerGroupPrefix string `long:"consumer-group-prefix" env:"CONSUMER_GROUP_PREFIX" default:"svc-ticketing" description:"prefix of redis consumer groups"`
}

// Load reads a .env file when one exists, then parses args and the environment.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env: %w", err)
	}

	var cfg Config
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return Config{}, fmt.Errorf("could not parse config: %w", err)
	}
	if cfg.RedisAddr == "" {
		return Config{}, errors.New("redis address is required, set REDIS_ADDR or --redis-addr")
	}

	return cfg, nil
}

func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
