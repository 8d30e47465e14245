package scan

import (
	"io/fs"
	"path"
	"strings"
)

const (
	workflowDirectoryPrefixConstant = ".github/workflows"
	workflowExtensionYmlConstant    = ".yml"
	workflowExtensionYamlConstant   = ".yaml"
)

var defaultDependencyFileNames = []string{
	"package.json",
	"requirements.txt",
	"Pipfile",
	"yarn.lock",
	"poetry.lock",
	"Gemfile",
	"composer.json",
	"Cargo.toml",
	"go.mod",
	"environment.yml",
	"env.yml",
	"setup.py",
}

// DefaultDependencyFileNames returns the dependency-manifest filenames recognized out of the box.
func DefaultDependencyFileNames() []string {
	duplicatedNames := make([]string, len(defaultDependencyFileNames))
	copy(duplicatedNames, defaultDependencyFileNames)
	return duplicatedNames
}

// classifier applies the workflow and dependency rule sets to relative file paths.
type classifier struct {
	dependencyFileNames map[string]struct{}
}

func newClassifier(dependencyFileNames []string) classifier {
	nameSet := make(map[string]struct{}, len(dependencyFileNames))
	for _, dependencyFileName := range dependencyFileNames {
		nameSet[dependencyFileName] = struct{}{}
	}
	return classifier{dependencyFileNames: nameSet}
}

// isWorkflowFile reports whether the slash-normalized relative path names a CI workflow definition.
func (ruleSet classifier) isWorkflowFile(relativePath string) bool {
	if !strings.HasPrefix(relativePath, workflowDirectoryPrefixConstant) {
		return false
	}
	return strings.HasSuffix(relativePath, workflowExtensionYmlConstant) || strings.HasSuffix(relativePath, workflowExtensionYamlConstant)
}

// isDependencyFile reports whether the final path component names a known dependency manifest.
func (ruleSet classifier) isDependencyFile(relativePath string) bool {
	_, known := ruleSet.dependencyFileNames[path.Base(relativePath)]
	return known
}

// classifyTree walks the filesystem depth-first, top-down, and appends every
// match to the returned sequences in traversal order. Entries that cannot be
// enumerated are skipped rather than failing the walk.
func (ruleSet classifier) classifyTree(fileSystem fs.FS, visitObserver func(relativePath string)) Classification {
	var classification Classification

	_ = fs.WalkDir(fileSystem, ".", func(relativePath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return nil
		}
		if !directoryEntry.Type().IsRegular() {
			return nil
		}

		if visitObserver != nil {
			visitObserver(relativePath)
		}

		if ruleSet.isWorkflowFile(relativePath) {
			classification.WorkflowFiles = append(classification.WorkflowFiles, relativePath)
		}
		if ruleSet.isDependencyFile(relativePath) {
			classification.DependencyFiles = append(classification.DependencyFiles, relativePath)
		}

		return nil
	})

	return classification
}
