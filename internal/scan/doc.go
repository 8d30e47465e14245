// Package scan implements the repository scanning workflow used by the
// reposcan CLI.
//
// It exposes CommandBuilder for wiring the scan Cobra command, Service for
// driving the acquire, classify, and report sequence programmatically, and
// supporting abstractions for Git and filesystem collaborators.
package scan
