package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/k1LoW/git-imgname/internal/branch"
)

const (
	configKeyType = "imgname.type"
)

// GitConfig retrieves a git config value as seen from dir.
// An unset key is not an error and yields "".
func GitConfig(ctx context.Context, dir, key string) (string, error) {
	cmd, err := gitCommand(ctx, "config", "--get", key)
	if err != nil {
		return "", err
	}
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		// git config returns exit code 1 if key is not found
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// DefaultBranchType returns the branch type configured in imgname.type,
// falling back to branch.Other when it is not set.
func DefaultBranchType(ctx context.Context, dir string) (branch.Type, error) {
	v, err := GitConfig(ctx, dir, configKeyType)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", configKeyType, err)
	}
	if v == "" {
		return branch.Other, nil
	}
	t, err := branch.ParseType(v)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", configKeyType, err)
	}
	return t, nil
}
