package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Exit codes surfaced by the scan command.
const (
	ExitCodeSuccess      = 0
	ExitCodeUsage        = 1
	ExitCodeCloneFailure = 2
	ExitCodePullFailure  = 3
)

// CommandOptions captures the configurable parameters for a single scan run.
type CommandOptions struct {
	RepositoryURL       string
	CloneDepth          int
	DependencyFileNames []string
	DebugOutput         bool
}

// Classification holds the matched file sequences in traversal order.
type Classification struct {
	WorkflowFiles   []string
	DependencyFiles []string
}

// RepositoryManager exposes the repository acquisition operations used by the service.
type RepositoryManager interface {
	CloneRepository(executionContext context.Context, remoteURL string, targetDirectory string, cloneDepth int) error
	PullLatestChanges(executionContext context.Context, repositoryPath string) error
}

// FileSystem provides the filesystem operations required by the scan workflow.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
}

// UsageError reports invocations that cannot run, such as a missing repository URL.
type UsageError struct {
	Message string
}

// Error describes the usage problem.
func (usageError UsageError) Error() string {
	return usageError.Message
}

// AcquisitionError reports a failed clone or pull along with the exit code to surface.
type AcquisitionError struct {
	ExitCode int
	Message  string
	Cause    error
}

// Error describes the acquisition failure.
func (acquisitionError AcquisitionError) Error() string {
	if acquisitionError.Cause == nil {
		return acquisitionError.Message
	}
	return fmt.Sprintf("%s: %v", acquisitionError.Message, acquisitionError.Cause)
}

// Unwrap exposes the underlying cause.
func (acquisitionError AcquisitionError) Unwrap() error {
	return acquisitionError.Cause
}

// ResolveExitCode maps a scan failure to the process exit code it mandates.
func ResolveExitCode(failure error) int {
	if failure == nil {
		return ExitCodeSuccess
	}

	acquisitionError := AcquisitionError{}
	if errors.As(failure, &acquisitionError) {
		return acquisitionError.ExitCode
	}

	return ExitCodeUsage
}
