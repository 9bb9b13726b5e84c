package config

import "time"

type Config struct {
	Global  GlobalConfig  `toml:"global" envconfig:"GLOBAL"`
	Log     LogConfig     `toml:"log" envconfig:"LOG"`
	Sentry  SentryConfig  `toml:"sentry" envconfig:"SENTRY"`
	Servers ServersConfig `toml:"servers" envconfig:"SERVERS"`
}

type GlobalConfig struct {
	Env string `toml:"env" envconfig:"ENV" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" envconfig:"DSN" validate:"omitempty,url"`
}

type ServersConfig struct {
	Static StaticServerConfig `toml:"static" envconfig:"STATIC"`
	Debug  DebugServerConfig  `toml:"debug" envconfig:"DEBUG"`
}

type StaticServerConfig struct {
	Addr string `toml:"addr" envconfig:"ADDR" validate:"required,listen_addr"`
	// Root is the document root. Empty means the directory holding the
	// config file, or the executable's directory when no file is given.
	Root     string `toml:"root" envconfig:"ROOT" validate:"required,dir"`
	MaxConns int    `toml:"max_conns" envconfig:"MAX_CONNS" validate:"min=1"`
	// ShutdownTimeout cuts in-flight exchanges this long after an
	// interrupt. Zero lets them finish.
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"min=0"`
}

type DebugServerConfig struct {
	// Addr is optional, the debug server is off when it is empty.
	Addr string `toml:"addr" envconfig:"ADDR" validate:"omitempty,listen_addr"`
}
