package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/temirov/reposcan/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant           = "git executor not configured"
	remoteURLRequiredMessageConstant            = "remote url must be provided"
	targetDirectoryRequiredMessageConstant      = "target directory must be provided"
	repositoryPathRequiredMessageConstant       = "repository path must be provided"
	cloneFailureTemplateConstant                = "failed to clone %s: %w"
	pullFailureTemplateConstant                 = "failed to pull latest changes in %s: %w"
	gitCloneSubcommandConstant                  = "clone"
	gitPullSubcommandConstant                   = "pull"
	gitDepthFlagConstant                        = "--depth"
	minimumCloneDepthConstant                   = 1
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrGitExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRemoteURLRequired indicates a clone was requested without a remote URL.
var ErrRemoteURLRequired = errors.New(remoteURLRequiredMessageConstant)

// ErrTargetDirectoryRequired indicates a clone was requested without a target directory.
var ErrTargetDirectoryRequired = errors.New(targetDirectoryRequiredMessageConstant)

// ErrRepositoryPathRequired indicates a pull was requested without a repository path.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// GitExecutor exposes the subset of shell execution used for repository acquisition.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager acquires repository working copies through the git tool.
type RepositoryManager struct {
	gitExecutor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager over the provided executor.
func NewRepositoryManager(gitExecutor GitExecutor) (*RepositoryManager, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{gitExecutor: gitExecutor}, nil
}

// CloneRepository creates a shallow working copy of the remote URL in the target directory.
func (manager *RepositoryManager) CloneRepository(executionContext context.Context, remoteURL string, targetDirectory string, cloneDepth int) error {
	trimmedRemoteURL := strings.TrimSpace(remoteURL)
	if len(trimmedRemoteURL) == 0 {
		return ErrRemoteURLRequired
	}
	trimmedTargetDirectory := strings.TrimSpace(targetDirectory)
	if len(trimmedTargetDirectory) == 0 {
		return ErrTargetDirectoryRequired
	}
	if cloneDepth < minimumCloneDepthConstant {
		cloneDepth = minimumCloneDepthConstant
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			gitCloneSubcommandConstant,
			gitDepthFlagConstant,
			strconv.Itoa(cloneDepth),
			trimmedRemoteURL,
			trimmedTargetDirectory,
		},
		EnvironmentVariables: nonInteractiveGitEnvironment(),
	}

	if _, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails); executionError != nil {
		return fmt.Errorf(cloneFailureTemplateConstant, trimmedRemoteURL, executionError)
	}

	return nil
}

// PullLatestChanges updates the working copy rooted at the repository path.
func (manager *RepositoryManager) PullLatestChanges(executionContext context.Context, repositoryPath string) error {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return ErrRepositoryPathRequired
	}

	commandDetails := execshell.CommandDetails{
		Arguments:            []string{gitPullSubcommandConstant},
		WorkingDirectory:     trimmedRepositoryPath,
		EnvironmentVariables: nonInteractiveGitEnvironment(),
	}

	if _, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails); executionError != nil {
		return fmt.Errorf(pullFailureTemplateConstant, trimmedRepositoryPath, executionError)
	}

	return nil
}

// nonInteractiveGitEnvironment disables credential prompts so acquisition never blocks on input.
func nonInteractiveGitEnvironment() map[string]string {
	return map[string]string{
		gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant,
	}
}
