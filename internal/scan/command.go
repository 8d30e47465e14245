package scan

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/reposcan/internal/execshell"
	"github.com/temirov/reposcan/internal/gitrepo"
	"github.com/temirov/reposcan/internal/ui"
	"github.com/temirov/reposcan/internal/utils"
)

const (
	commandUseConstant               = "scan <repository-url>"
	commandShortDescriptionConstant  = "Clone or update a repository and list its workflow and dependency files"
	commandLongDescriptionConstant   = "scan ensures a local working copy of the remote repository exists and is up to date, walks its file tree once, and reports CI workflow definitions under .github/workflows alongside well-known dependency manifests."
	flagDepthNameConstant            = "depth"
	flagDepthDescriptionConstant     = "Clone depth used when the repository is cloned for the first time."
	flagDebugNameConstant            = "debug"
	flagDebugDescriptionConstant     = "Print per-file traversal diagnostics to standard error."
	missingRepositoryMessageConstant = "repository URL argument is required"
	extraArgumentsMessageConstant    = "accepts at most one repository URL argument"
	invalidDepthMessageConstant      = "clone depth must be at least 1"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the scan cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitExecutor                  gitrepo.GitExecutor
	RepositoryManager            RepositoryManager
	FileSystem                   FileSystem
	CommandEventObserver         execshell.CommandEventObserver
}

// Build constructs the cobra command for the repository scanning workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		Args:          validateCommandArguments,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          builder.run,
	}

	command.Flags().Int(flagDepthNameConstant, DefaultCommandConfiguration().CloneDepth, flagDepthDescriptionConstant)
	command.Flags().Bool(flagDebugNameConstant, false, flagDebugDescriptionConstant)

	return command, nil
}

// validateCommandArguments keeps arity violations on the usage error path.
func validateCommandArguments(command *cobra.Command, arguments []string) error {
	if len(arguments) > 1 {
		return UsageError{Message: extraArgumentsMessageConstant}
	}
	return nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	gitExecutor, executorError := ResolveGitExecutor(builder.GitExecutor, logger, builder.resolveCommandEventObserver(logger))
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := ResolveRepositoryManager(builder.RepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	fileSystem := ResolveFileSystem(builder.FileSystem)

	service := NewService(repositoryManager, fileSystem, utils.NewFlushingWriter(command.OutOrStdout()), command.ErrOrStderr())
	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	repositoryURL := ""
	if len(arguments) > 0 {
		repositoryURL = strings.TrimSpace(arguments[0])
	}
	if len(repositoryURL) == 0 {
		if helpError := builder.displayCommandHelp(command); helpError != nil {
			return CommandOptions{}, helpError
		}
		return CommandOptions{}, UsageError{Message: missingRepositoryMessageConstant}
	}

	configuration := builder.resolveConfiguration().sanitize()

	cloneDepth := configuration.CloneDepth
	if command.Flags().Changed(flagDepthNameConstant) {
		flagDepth, _ := command.Flags().GetInt(flagDepthNameConstant)
		if flagDepth < defaultCloneDepthConstant {
			return CommandOptions{}, UsageError{Message: invalidDepthMessageConstant}
		}
		cloneDepth = flagDepth
	}

	debugFlag, _ := command.Flags().GetBool(flagDebugNameConstant)

	options := CommandOptions{
		RepositoryURL:       repositoryURL,
		CloneDepth:          cloneDepth,
		DependencyFileNames: configuration.DependencyFiles,
		DebugOutput:         debugFlag || configuration.Debug,
	}

	return options, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveCommandEventObserver(logger *zap.Logger) execshell.CommandEventObserver {
	if builder.CommandEventObserver != nil {
		return builder.CommandEventObserver
	}
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		return ui.NewConsoleCommandEventLogger(logger)
	}
	return nil
}

func (builder *CommandBuilder) displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
