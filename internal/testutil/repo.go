// Package testutil provides throwaway git repositories for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a git repository in a temporary directory.
type TestRepo struct {
	t    *testing.T
	Root string
	Repo *gogit.Repository
}

// NewTestRepo initializes a repository whose default branch is main.
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repo, err := gogit.PlainInitWithOptions(root, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName("main"),
		},
	})
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	return &TestRepo{t: t, Root: root, Repo: repo}
}

// CreateFile writes content to name relative to the repository root.
func (r *TestRepo) CreateFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write file: %v", err)
	}
}

// Commit stages every change and commits it.
func (r *TestRepo) Commit(message string) plumbing.Hash {
	r.t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("failed to get worktree: %v", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		r.t.Fatalf("failed to stage changes: %v", err)
	}
	h, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		r.t.Fatalf("failed to commit: %v", err)
	}
	return h
}

// CreateBranch creates branch at HEAD and checks it out.
func (r *TestRepo) CreateBranch(name string) {
	r.t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("failed to get worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	}); err != nil {
		r.t.Fatalf("failed to create branch %s: %v", name, err)
	}
}

// Detach checks out h without a branch.
func (r *TestRepo) Detach(h plumbing.Hash) {
	r.t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("failed to get worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: h}); err != nil {
		r.t.Fatalf("failed to detach HEAD: %v", err)
	}
}

// SetConfig sets a repository-local git config option, e.g. SetConfig("imgname", "type", "RELEASE").
func (r *TestRepo) SetConfig(section, key, value string) {
	r.t.Helper()

	cfg, err := r.Repo.Config()
	if err != nil {
		r.t.Fatalf("failed to read config: %v", err)
	}
	cfg.Raw.Section(section).SetOption(key, value)
	if err := r.Repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("failed to write config: %v", err)
	}
}
