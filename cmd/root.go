// Package cmd implements the git-imgname CLI.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/k1LoW/git-imgname/internal/branch"
	"github.com/k1LoW/git-imgname/internal/dockername"
	"github.com/k1LoW/git-imgname/internal/git"
)

type options struct {
	branchType string
	repo       string
	nfc        bool
	table      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "git-imgname [BRANCH...]",
		Short: "Convert git branch names into Docker image names",
		Long: `git-imgname converts git branch names into valid Docker image name components.

Only branches of type OTHER are converted; for every other type an empty line
is printed so that the caller can fall back to its own naming.

If no BRANCH is given, the current branch of the repository is used.
The default branch type can be set with:

  git config imgname.type RELEASE`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.branchType, "type", "t", "", fmt.Sprintf("branch type (%s)", strings.Join(branch.Names(), ", ")))
	cmd.Flags().StringVarP(&opts.repo, "repo", "C", ".", "repository to read the current branch and config from")
	cmd.Flags().BoolVar(&opts.nfc, "nfc", false, "compose the branch name to Unicode NFC before converting")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print branch, type and image name as a table")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print trace logs to stderr")
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return branch.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.AddCommand(newInitCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string, opts *options) error {
	ctx := cmd.Context()
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	var t branch.Type
	var err error
	if opts.branchType != "" {
		t, err = branch.ParseType(opts.branchType)
	} else {
		t, err = git.DefaultBranchType(ctx, opts.repo)
	}
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		current, err := git.CurrentBranch(opts.repo)
		if err != nil {
			return err
		}
		logger.Debug("resolved current branch", "repo", opts.repo, "branch", current)
		names = []string{current}
	}

	mopts := []dockername.Option{dockername.WithLogger(logger)}
	if opts.nfc {
		mopts = append(mopts, dockername.WithComposedInput())
	}
	m := dockername.NewMapper(mopts...)

	w := cmd.OutOrStdout()
	if opts.table {
		table := tablewriter.NewWriter(w)
		table.Header("BRANCH", "TYPE", "IMAGE NAME")
		for _, name := range names {
			if err := table.Append(name, t.String(), m.Map(name, t)); err != nil {
				return err
			}
		}
		return table.Render()
	}
	for _, name := range names {
		fmt.Fprintln(w, m.Map(name, t))
	}
	return nil
}

// newLogger returns a tint logger on w, or a logger that discards everything when verbose is off.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: noColor,
	}))
}
