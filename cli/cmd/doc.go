// Package cmd implements the spent subcommands.
//
// The run command is the instrumented haversine workload: it parses an input
// data set, averages the pair distances, optionally validates against a
// reference answer file, and prints the cycle-count profile of its own
// execution. The gen command produces those input and answer files.
package cmd
