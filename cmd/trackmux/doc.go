// Package main hosts the trackmux CLI entrypoint and command graph.
//
// The root command turns stream-selection flags into a plan, prints the
// argument report, and hands the plan to the remux runner. Subcommands cover
// tool discovery (check) and configuration scaffolding (config init/validate).
//
// Keep this package lean: behavior lives in the internal packages and is
// surfaced here through flags and rendering only.
package main
