package scan

import "strings"

const (
	cloneDepthConfigurationKeySuffixConstant      = ".clone_depth"
	dependencyFilesConfigurationKeySuffixConstant = ".dependency_files"
	debugConfigurationKeySuffixConstant           = ".debug"
	defaultCloneDepthConstant                     = 1
)

// CommandConfiguration captures persistent settings for the scan command.
type CommandConfiguration struct {
	CloneDepth      int      `mapstructure:"clone_depth"`
	DependencyFiles []string `mapstructure:"dependency_files"`
	Debug           bool     `mapstructure:"debug"`
}

// DefaultCommandConfiguration returns baseline configuration values for the scan command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		CloneDepth:      defaultCloneDepthConstant,
		DependencyFiles: DefaultDependencyFileNames(),
		Debug:           false,
	}
}

// DefaultConfigurationValues exposes scan defaults keyed for the configuration loader.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + cloneDepthConfigurationKeySuffixConstant:      defaults.CloneDepth,
		configurationKeyPrefix + dependencyFilesConfigurationKeySuffixConstant: defaults.DependencyFiles,
		configurationKeyPrefix + debugConfigurationKeySuffixConstant:           defaults.Debug,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	if sanitized.CloneDepth < defaultCloneDepthConstant {
		sanitized.CloneDepth = defaultCloneDepthConstant
	}

	sanitized.DependencyFiles = sanitizeDependencyFileNames(configuration.DependencyFiles)
	if len(sanitized.DependencyFiles) == 0 {
		sanitized.DependencyFiles = DefaultDependencyFileNames()
	}

	return sanitized
}

func sanitizeDependencyFileNames(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
