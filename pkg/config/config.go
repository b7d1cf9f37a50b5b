package config

import "github.com/caarlos0/env/v11"

// Config is the runtime configuration of a resource cache and insertion resolver.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development" yaml:"env"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"rescache" yaml:"service_name"`

	Log     LogConfig    `yaml:"log"`
	Cache   CacheConfig  `yaml:"cache"`
	Insert  InsertConfig `yaml:"insert"`
	Metrics bool         `env:"RESCACHE_METRICS" envDefault:"false" yaml:"metrics"`
}

// LogConfig selects the slog level and output format.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" yaml:"level"`
	Format string `env:"LOG_FORMAT" envDefault:"json" yaml:"format"`
}

// CacheConfig sizes the resource cache. A size of zero or less selects the
// unbounded policy.
type CacheConfig struct {
	Size int `env:"RESCACHE_CACHE_SIZE" envDefault:"89" yaml:"size"`
}

// InsertConfig names the method the insertion resolver looks for.
type InsertConfig struct {
	Method string `env:"RESCACHE_INSERT_METHOD" envDefault:"Put" yaml:"method"`
}

// Default returns a Config holding only the envDefault values, ignoring the
// process environment.
func Default() Config {
	var cfg Config
	// every field has a valid default, so parsing an empty environment cannot fail
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}
