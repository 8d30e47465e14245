package execshell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/reposcan/internal/execshell"
)

func gitCloneCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments: []string{"clone", "--depth", "1", "https://example.com/foo.git", "foo"},
		},
	}
}

func gitPullCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"pull"},
			WorkingDirectory: "foo",
		},
	}
}

func TestCommandMessageFormatterMessages(testInstance *testing.T) {
	formatter := execshell.CommandMessageFormatter{}

	testCases := []struct {
		name            string
		buildMessage    func() string
		expectedMessage string
	}{
		{
			name: "clone_started",
			buildMessage: func() string {
				return formatter.BuildStartedMessage(gitCloneCommand())
			},
			expectedMessage: "Cloning https://example.com/foo.git into foo",
		},
		{
			name: "clone_success",
			buildMessage: func() string {
				return formatter.BuildSuccessMessage(gitCloneCommand())
			},
			expectedMessage: "Cloned https://example.com/foo.git into foo",
		},
		{
			name: "clone_failure_with_standard_error",
			buildMessage: func() string {
				return formatter.BuildFailureMessage(gitCloneCommand(), execshell.ExecutionResult{ExitCode: 128, StandardError: "remote not found"})
			},
			expectedMessage: "Failed to clone https://example.com/foo.git into foo (exit code 128: remote not found)",
		},
		{
			name: "clone_execution_failure",
			buildMessage: func() string {
				return formatter.BuildExecutionFailureMessage(gitCloneCommand(), errors.New("binary missing"))
			},
			expectedMessage: "Unable to clone https://example.com/foo.git into foo: binary missing",
		},
		{
			name: "pull_started",
			buildMessage: func() string {
				return formatter.BuildStartedMessage(gitPullCommand())
			},
			expectedMessage: "Pulling latest changes in foo",
		},
		{
			name: "pull_failure_without_standard_error",
			buildMessage: func() string {
				return formatter.BuildFailureMessage(gitPullCommand(), execshell.ExecutionResult{ExitCode: 1})
			},
			expectedMessage: "Failed to pull latest changes in foo (exit code 1)",
		},
		{
			name: "generic_started",
			buildMessage: func() string {
				return formatter.BuildStartedMessage(execshell.ShellCommand{
					Name:    execshell.CommandGit,
					Details: execshell.CommandDetails{Arguments: []string{"status"}, WorkingDirectory: "foo"},
				})
			},
			expectedMessage: "Running git status (in foo)",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedMessage, testCase.buildMessage())
		})
	}
}
