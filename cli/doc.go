// Package cli contains the command line interface for createnv.
//
// # Usage
//
//	createnv [flags]
//	createnv init [--force]
//
// Without a command, createnv reads .env.sample, asks for every value it
// declares and writes .env:
//
//	createnv --source .env.example --target .env.local --use-default
//
// # Configuration
//
// Flag values may be saved with the init command and are read back from
// config.json, config.yaml or config.yml in the user configuration
// directory ($XDG_CONFIG_HOME/createnv on Linux). YAML keys are flag names,
// with hyphens or underscores, optionally nested:
//
//	use-default: true
//	log:
//	  level: info
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Logs are written to standard error.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o createnv .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/createnv/pprof)
package cli
