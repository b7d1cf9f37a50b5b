// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables and YAML files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Layers an optional YAML file between tag defaults and the environment.
//
// [Config] describes the resource cache runtime itself: environment, service
// name, log level and format, cache size, insertion method name and whether
// Prometheus metrics are enabled.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` keyed by
// reflect.Type together with a `sync.Once` per type, guaranteeing that
// parsing runs at most once per configuration type even when accessed from
// multiple goroutines concurrently. A failed parse is not cached.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Or with a YAML file:
//
//	// cache:
//	//   size: 256
//	// insert:
//	//   method: Set
//	var cfg config.Config
//	if err := config.LoadFile("rescache.yaml", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Environment variables still override the file, so RESCACHE_CACHE_SIZE=0
// forces the unbounded policy regardless of what the file says.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars into struct.
//   - `ErrConfigNotLoaded` – a concurrent load of the same type failed.
//   - `ErrNilPointer`       – nil pointer passed to `Load`/`MustLoad`/`LoadFile`.
//   - `ErrLoadingEnvFile`  – a `.env` file passed to `LoadEnv` could not be read.
//   - `ErrReadingFile`     – a YAML file could not be read or decoded.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests or
// `ForceReloadConfig(&cfg)` to reload a particular struct after the process
// environment changes.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
