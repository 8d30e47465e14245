package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/temirov/reposcan/internal/gitrepo"
)

const (
	repositoryURLRequiredMessageConstant = "repository URL must be provided"
	cloneFailedMessageConstant           = "Failed to clone repository."
	pullFailedMessageConstant            = "Failed to pull latest changes."
	cloningTemplateConstant              = "Cloning repository %s ...\n"
	pullingTemplateConstant              = "Repository %s already exists. Pulling latest changes ...\n"
	workflowSectionHeaderConstant        = "\nWorkflow files found:"
	dependencySectionHeaderConstant      = "\nDependency files found:"
	reportEntryTemplateConstant          = "  - %s\n"
	reportEmptyPlaceholderConstant       = "  (none found)"
	debugVisitTemplateConstant           = "DEBUG: classifying %s\n"
)

// Service coordinates repository acquisition, classification, and reporting.
type Service struct {
	repositoryManager RepositoryManager
	fileSystem        FileSystem
	outputWriter      io.Writer
	errorWriter       io.Writer
}

// NewService constructs a Service using the provided collaborators.
func NewService(repositoryManager RepositoryManager, fileSystem FileSystem, outputWriter io.Writer, errorWriter io.Writer) *Service {
	if outputWriter == nil {
		outputWriter = os.Stdout
	}
	if errorWriter == nil {
		errorWriter = os.Stderr
	}
	return &Service{
		repositoryManager: repositoryManager,
		fileSystem:        fileSystem,
		outputWriter:      outputWriter,
		errorWriter:       errorWriter,
	}
}

// Run acquires the repository, classifies its file tree, and prints the report.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	trimmedRepositoryURL := strings.TrimSpace(options.RepositoryURL)
	if len(trimmedRepositoryURL) == 0 {
		return UsageError{Message: repositoryURLRequiredMessageConstant}
	}

	localDirectory, acquireError := service.acquire(executionContext, trimmedRepositoryURL, options)
	if acquireError != nil {
		return acquireError
	}

	classification := service.classify(localDirectory, options)
	service.report(classification)

	return nil
}

// acquire ensures a local working copy of the remote repository exists and is current.
// The derived local directory name decides between the clone and pull paths.
func (service *Service) acquire(executionContext context.Context, repositoryURL string, options CommandOptions) (string, error) {
	localDirectory, derivationError := gitrepo.LocalDirectoryName(repositoryURL)
	if derivationError != nil {
		return "", UsageError{Message: derivationError.Error()}
	}

	if _, statError := service.fileSystem.Stat(localDirectory); statError != nil {
		fmt.Fprintf(service.outputWriter, cloningTemplateConstant, repositoryURL)
		if cloneError := service.repositoryManager.CloneRepository(executionContext, repositoryURL, localDirectory, options.CloneDepth); cloneError != nil {
			fmt.Fprintln(service.outputWriter, cloneFailedMessageConstant)
			return "", AcquisitionError{ExitCode: ExitCodeCloneFailure, Message: cloneFailedMessageConstant, Cause: cloneError}
		}
		return localDirectory, nil
	}

	fmt.Fprintf(service.outputWriter, pullingTemplateConstant, localDirectory)
	if pullError := service.repositoryManager.PullLatestChanges(executionContext, localDirectory); pullError != nil {
		fmt.Fprintln(service.outputWriter, pullFailedMessageConstant)
		return "", AcquisitionError{ExitCode: ExitCodePullFailure, Message: pullFailedMessageConstant, Cause: pullError}
	}

	return localDirectory, nil
}

// classify walks the local working copy once and applies both rule sets to every regular file.
func (service *Service) classify(localDirectory string, options CommandOptions) Classification {
	dependencyFileNames := options.DependencyFileNames
	if len(dependencyFileNames) == 0 {
		dependencyFileNames = DefaultDependencyFileNames()
	}

	ruleSet := newClassifier(dependencyFileNames)

	var visitObserver func(relativePath string)
	if options.DebugOutput {
		visitObserver = func(relativePath string) {
			fmt.Fprintf(service.errorWriter, debugVisitTemplateConstant, relativePath)
		}
	}

	return ruleSet.classifyTree(os.DirFS(localDirectory), visitObserver)
}

// report prints the labeled workflow and dependency sections to the output writer.
func (service *Service) report(classification Classification) {
	service.reportSection(workflowSectionHeaderConstant, classification.WorkflowFiles)
	service.reportSection(dependencySectionHeaderConstant, classification.DependencyFiles)
}

func (service *Service) reportSection(sectionHeader string, matchedPaths []string) {
	fmt.Fprintln(service.outputWriter, sectionHeader)
	if len(matchedPaths) == 0 {
		fmt.Fprintln(service.outputWriter, reportEmptyPlaceholderConstant)
		return
	}
	for _, matchedPath := range matchedPaths {
		fmt.Fprintf(service.outputWriter, reportEntryTemplateConstant, matchedPath)
	}
}
