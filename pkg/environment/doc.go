// Package environment defines the application environments (development,
// staging, production) shared by configuration and logger presets.
//
// Parse accepts the usual short aliases ("dev", "stage", "prod") and falls
// back to Development for unknown values:
//
//	env := environment.Parse(cfg.Env)
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
package environment
