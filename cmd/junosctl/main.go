// Package main provides the junosctl CLI, a set of single-shot operational
// tools for Junos devices: reboot scheduling, process restarts, statistics
// collection, support-bundle retrieval, template config push and
// JTAC-recommended-version lookup.
package main

func main() {
	Execute()
}
