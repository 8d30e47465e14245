// Package execshell provides structured helpers for invoking the git tool.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines abstractions used throughout reposcan
// to run git in a testable manner.
package execshell
