package e2e

import (
	"strings"
	"testing"

	"github.com/k1LoW/git-imgname/internal/testutil"
)

func TestE2E_Imgname(t *testing.T) {
	t.Parallel()
	binPath := buildBinary(t)

	t.Run("branch_args", func(t *testing.T) {
		t.Parallel()
		repo := testutil.NewTestRepo(t)

		out, stderr, err := runGitImgname(t, binPath, repo.Root, "feature/foo", "ÄÖÜäöüß", "___")
		if err != nil {
			t.Fatalf("git-imgname failed: %v\nstderr: %s", err, stderr)
		}
		if want := "feature_foo\naeoeueaeoeuess\na__a_\n"; out != want {
			t.Errorf("output = %q, want %q", out, want) //nostyle:errorstrings
		}
	})

	t.Run("current_branch", func(t *testing.T) {
		t.Parallel()
		repo := testutil.NewTestRepo(t)
		repo.CreateFile("README.md", "# Test")
		repo.Commit("initial commit")
		repo.CreateBranch("feature/JIRA-42_fix")

		out, stderr, err := runGitImgname(t, binPath, repo.Root)
		if err != nil {
			t.Fatalf("git-imgname failed: %v\nstderr: %s", err, stderr)
		}
		if want := "feature_jira-42_fix\n"; out != want {
			t.Errorf("output = %q, want %q", out, want) //nostyle:errorstrings
		}
	})

	t.Run("non_other_type", func(t *testing.T) {
		t.Parallel()
		repo := testutil.NewTestRepo(t)

		out, stderr, err := runGitImgname(t, binPath, repo.Root, "-t", "release", "release/1.0")
		if err != nil {
			t.Fatalf("git-imgname failed: %v\nstderr: %s", err, stderr)
		}
		if out != "\n" {
			t.Errorf("output = %q, want empty line", out) //nostyle:errorstrings
		}
	})

	t.Run("unknown_type", func(t *testing.T) {
		t.Parallel()
		repo := testutil.NewTestRepo(t)

		_, stderr, err := runGitImgname(t, binPath, repo.Root, "-t", "task", "feature/foo")
		if err == nil {
			t.Fatal("expected error for unknown branch type")
		}
		if !strings.Contains(stderr, "unknown branch type") {
			t.Errorf("stderr should mention the unknown type, got: %s", stderr)
		}
	})

	t.Run("detached_head", func(t *testing.T) {
		t.Parallel()
		repo := testutil.NewTestRepo(t)
		repo.CreateFile("README.md", "# Test")
		h := repo.Commit("initial commit")
		repo.Detach(h)

		_, stderr, err := runGitImgname(t, binPath, repo.Root)
		if err == nil {
			t.Fatal("expected error for detached HEAD")
		}
		if !strings.Contains(stderr, "detached") {
			t.Errorf("stderr should mention detached HEAD, got: %s", stderr)
		}
	})
}
