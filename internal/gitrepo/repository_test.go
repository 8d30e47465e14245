package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/reposcan/internal/execshell"
	"github.com/temirov/reposcan/internal/gitrepo"
)

const (
	testRemoteURLConstant       = "https://example.com/foo.git"
	testTargetDirectoryConstant = "foo"
)

type recordingGitExecutor struct {
	recordedDetails []execshell.CommandDetails
	executionError  error
}

func (executor *recordingGitExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	if executor.executionError != nil {
		return execshell.ExecutionResult{}, executor.executionError
	}
	return execshell.ExecutionResult{}, nil
}

func TestNewRepositoryManagerValidation(testInstance *testing.T) {
	manager, creationError := gitrepo.NewRepositoryManager(nil)
	require.Nil(testInstance, manager)
	require.ErrorIs(testInstance, creationError, gitrepo.ErrGitExecutorNotConfigured)
}

func TestCloneRepositoryBuildsShallowCloneCommand(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	cloneError := manager.CloneRepository(context.Background(), testRemoteURLConstant, testTargetDirectoryConstant, 1)
	require.NoError(testInstance, cloneError)

	require.Len(testInstance, recordingExecutor.recordedDetails, 1)
	recordedDetails := recordingExecutor.recordedDetails[0]
	require.Equal(testInstance, []string{"clone", "--depth", "1", testRemoteURLConstant, testTargetDirectoryConstant}, recordedDetails.Arguments)
	require.Empty(testInstance, recordedDetails.WorkingDirectory)
	require.Equal(testInstance, "0", recordedDetails.EnvironmentVariables["GIT_TERMINAL_PROMPT"])
}

func TestCloneRepositoryNormalizesDepth(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	cloneError := manager.CloneRepository(context.Background(), testRemoteURLConstant, testTargetDirectoryConstant, 0)
	require.NoError(testInstance, cloneError)

	require.Len(testInstance, recordingExecutor.recordedDetails, 1)
	require.Equal(testInstance, []string{"clone", "--depth", "1", testRemoteURLConstant, testTargetDirectoryConstant}, recordingExecutor.recordedDetails[0].Arguments)
}

func TestCloneRepositoryValidatesInputs(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	require.ErrorIs(testInstance, manager.CloneRepository(context.Background(), " ", testTargetDirectoryConstant, 1), gitrepo.ErrRemoteURLRequired)
	require.ErrorIs(testInstance, manager.CloneRepository(context.Background(), testRemoteURLConstant, " ", 1), gitrepo.ErrTargetDirectoryRequired)
	require.Empty(testInstance, recordingExecutor.recordedDetails)
}

func TestCloneRepositoryWrapsExecutionFailure(testInstance *testing.T) {
	executionFailure := errors.New("clone refused")
	recordingExecutor := &recordingGitExecutor{executionError: executionFailure}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	cloneError := manager.CloneRepository(context.Background(), testRemoteURLConstant, testTargetDirectoryConstant, 1)
	require.Error(testInstance, cloneError)
	require.ErrorIs(testInstance, cloneError, executionFailure)
}

func TestPullLatestChangesRunsInRepositoryDirectory(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	pullError := manager.PullLatestChanges(context.Background(), testTargetDirectoryConstant)
	require.NoError(testInstance, pullError)

	require.Len(testInstance, recordingExecutor.recordedDetails, 1)
	recordedDetails := recordingExecutor.recordedDetails[0]
	require.Equal(testInstance, []string{"pull"}, recordedDetails.Arguments)
	require.Equal(testInstance, testTargetDirectoryConstant, recordedDetails.WorkingDirectory)
	require.Equal(testInstance, "0", recordedDetails.EnvironmentVariables["GIT_TERMINAL_PROMPT"])
}

func TestPullLatestChangesValidatesRepositoryPath(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	require.ErrorIs(testInstance, manager.PullLatestChanges(context.Background(), ""), gitrepo.ErrRepositoryPathRequired)
	require.Empty(testInstance, recordingExecutor.recordedDetails)
}

func TestPullLatestChangesWrapsExecutionFailure(testInstance *testing.T) {
	executionFailure := errors.New("pull refused")
	recordingExecutor := &recordingGitExecutor{executionError: executionFailure}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	pullError := manager.PullLatestChanges(context.Background(), testTargetDirectoryConstant)
	require.Error(testInstance, pullError)
	require.ErrorIs(testInstance, pullError, executionFailure)
}
