package scan_test

import (
	"os"
	"testing"
)

func changeWorkingDirectory(testInstance *testing.T, directory string) {
	testInstance.Helper()

	originalDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		testInstance.Fatalf("failed to determine working directory: %v", workingDirectoryError)
	}
	if changeError := os.Chdir(directory); changeError != nil {
		testInstance.Fatalf("failed to change working directory: %v", changeError)
	}
	testInstance.Cleanup(func() {
		if restoreError := os.Chdir(originalDirectory); restoreError != nil {
			testInstance.Errorf("failed to restore working directory: %v", restoreError)
		}
	})
}
