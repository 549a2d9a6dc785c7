// Package config provides loading and environment overlay for the runlength
// tool configuration. It exposes a Default() baseline, a JSON file loader
// and RUNLENGTH_* environment overrides.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/runlength.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
