// Package gitrepo contains helpers for acquiring Git repositories.
//
// It exposes RepositoryManager for cloning and updating working copies through
// the git tool, along with URL utilities that derive the local directory name
// a remote repository clones into.
package gitrepo
