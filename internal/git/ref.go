package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrDetachedHead is returned by CurrentBranch when HEAD does not point to a branch.
var ErrDetachedHead = errors.New("HEAD is detached; pass the branch name explicitly")

var refPrefixes = []string{
	"refs/heads/",
	"refs/remotes/origin/",
	"origin/",
}

// NormalizeBranchName strips ref and remote prefixes so that
// "refs/heads/feature/x" and "origin/feature/x" both become "feature/x".
// CI systems commonly report branches in either form.
func NormalizeBranchName(name string) string {
	name = strings.TrimSpace(name)
	for _, p := range refPrefixes {
		if strings.HasPrefix(name, p) {
			return strings.TrimPrefix(name, p)
		}
	}
	return name
}

// CurrentBranch returns the name of the branch HEAD points to in the repository
// containing dir. Unborn branches are reported by name as well.
func CurrentBranch(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", ErrDetachedHead
	}
	return NormalizeBranchName(head.Target().String()), nil
}
