// Package logger builds the *slog.Logger used as the diagnostic sink across
// the module, together with helper attribute constructors that keep
// attribute naming consistent.
//
// # Architecture
//
// New applies a set of Option functions, picks slog.NewTextHandler or
// slog.NewJSONHandler depending on the configured Format and attaches any
// static attributes. Environment presets (WithDevelopment, WithStaging,
// WithProduction, WithEnvironment) set format, level and the "service" and
// "env" attributes in one step.
//
// Helper constructors such as Component, Policy, Shape and Error live in
// attr.go.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Service),
//	    logger.WithLevel(level),
//	)
//
//	log.Info("resource cache initialized",
//	    logger.Component("resource_cache"),
//	    logger.Policy("lru"),
//	    logger.Capacity(89),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
// log.Info("done", logger.Error(err)) needs no nil check. WithFormat panics on
// an unknown format and ParseLevel returns an error for unknown level names.
package logger
