// Package cli contains the command line interface for spent.
//
// The CLI hosts the sample instrumented workload:
//
//	spent gen --dist cluster --seed 42 --pairs 100000
//	spent run data_100000_flex.json data_100000_haveranswer.f64
//
// Logging and optional pprof profiling are configured through flag groups:
//
//	spent --log-level=debug --pprof-mode=cpu run input.json
//
// Flag defaults may also be supplied by a YAML config file at
// $XDG_CONFIG_HOME/spent/config.yaml; command-line flags override it.
package cli
