package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/reposcan/internal/utils"
)

type loaderTestConfiguration struct {
	Common struct {
		LogLevel  string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"common"`
	Tools struct {
		Scan struct {
			CloneDepth int  `mapstructure:"clone_depth"`
			Debug      bool `mapstructure:"debug"`
		} `mapstructure:"scan"`
	} `mapstructure:"tools"`
}

func writeConfigurationFile(testInstance *testing.T, directory string, fileName string, document map[string]any) string {
	testInstance.Helper()

	encodedDocument, marshalError := yaml.Marshal(document)
	require.NoError(testInstance, marshalError)

	configurationFilePath := filepath.Join(directory, fileName)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, encodedDocument, 0o644))

	return configurationFilePath
}

func TestConfigurationLoaderReadsFileFromSearchPath(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	writeConfigurationFile(testInstance, temporaryDirectory, "config.yaml", map[string]any{
		"common": map[string]any{
			"log_level":  "debug",
			"log_format": "console",
		},
		"tools": map[string]any{
			"scan": map[string]any{
				"clone_depth": 7,
			},
		},
	})

	loader := utils.NewConfigurationLoader("config", "yaml", "REPOSCAN", []string{temporaryDirectory})

	var configuration loaderTestConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration("", nil, &configuration)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, "debug", configuration.Common.LogLevel)
	require.Equal(testInstance, "console", configuration.Common.LogFormat)
	require.Equal(testInstance, 7, configuration.Tools.Scan.CloneDepth)
	require.NotEmpty(testInstance, loadedConfiguration.ConfigFileUsed)
}

func TestConfigurationLoaderPrefersExplicitFile(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	writeConfigurationFile(testInstance, temporaryDirectory, "config.yaml", map[string]any{
		"common": map[string]any{"log_level": "info"},
	})
	explicitFilePath := writeConfigurationFile(testInstance, temporaryDirectory, "override.yaml", map[string]any{
		"common": map[string]any{"log_level": "error"},
	})

	loader := utils.NewConfigurationLoader("config", "yaml", "REPOSCAN", []string{temporaryDirectory})

	var configuration loaderTestConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration(explicitFilePath, nil, &configuration)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, "error", configuration.Common.LogLevel)
	require.Equal(testInstance, explicitFilePath, loadedConfiguration.ConfigFileUsed)
}

func TestConfigurationLoaderAppliesDefaultsWithoutFile(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader("config", "yaml", "REPOSCAN", []string{testInstance.TempDir()})

	defaultValues := map[string]any{
		"common.log_level":       "info",
		"common.log_format":      "structured",
		"tools.scan.clone_depth": 1,
	}

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration("", defaultValues, &configuration)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
	require.Equal(testInstance, 1, configuration.Tools.Scan.CloneDepth)
}

func TestConfigurationLoaderHonorsEnvironmentOverrides(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader("config", "yaml", "REPOSCAN", []string{testInstance.TempDir()})

	testInstance.Setenv("REPOSCAN_COMMON_LOG_LEVEL", "warn")

	defaultValues := map[string]any{
		"common.log_level": "info",
	}

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration("", defaultValues, &configuration)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, "warn", configuration.Common.LogLevel)
}

func TestConfigurationLoaderReportsUnreadableFile(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	malformedFilePath := filepath.Join(temporaryDirectory, "broken.yaml")
	require.NoError(testInstance, os.WriteFile(malformedFilePath, []byte("common: [unclosed"), 0o644))

	loader := utils.NewConfigurationLoader("config", "yaml", "REPOSCAN", []string{temporaryDirectory})

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration(malformedFilePath, nil, &configuration)
	require.Error(testInstance, loadError)
	require.Contains(testInstance, loadError.Error(), "failed to read configuration")
}
