package gitrepo

import (
	"fmt"
	"strings"
)

const (
	pathSeparatorConstant               = "/"
	sshPathDelimiterConstant            = ":"
	gitSuffixConstant                   = ".git"
	remoteURLParseErrorTemplateConstant = "%s: %s"
	requiredValueMessageConstant        = "value must be provided"
	invalidRemoteURLMessageConstant     = "invalid remote url"
)

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// LocalDirectoryName derives the directory name a clone of the remote URL produces.
// The final path segment is used with any trailing slash and .git suffix removed,
// covering HTTPS, ssh://, and scp-like git@host:owner/repo.git remotes alike.
func LocalDirectoryName(remoteURL string) (string, error) {
	trimmedRemote := strings.TrimSpace(remoteURL)
	if len(trimmedRemote) == 0 {
		return "", RemoteURLParseError{Input: remoteURL, Message: requiredValueMessageConstant}
	}

	trimmedRemote = strings.TrimRight(trimmedRemote, pathSeparatorConstant)

	lastSegment := trimmedRemote
	if separatorIndex := strings.LastIndex(trimmedRemote, pathSeparatorConstant); separatorIndex >= 0 {
		lastSegment = trimmedRemote[separatorIndex+1:]
	}
	if delimiterIndex := strings.LastIndex(lastSegment, sshPathDelimiterConstant); delimiterIndex >= 0 {
		lastSegment = lastSegment[delimiterIndex+1:]
	}

	directoryName := strings.TrimSuffix(lastSegment, gitSuffixConstant)
	if len(directoryName) == 0 {
		return "", RemoteURLParseError{Input: remoteURL, Message: invalidRemoteURLMessageConstant}
	}

	return directoryName, nil
}
