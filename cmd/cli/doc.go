// Package cli constructs the reposcan command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives. It exposes helpers to build reusable application instances, to
// execute the default command set, and to resolve process exit codes from
// command errors.
package cli
