package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohankatakam/githours/internal/config"
	"github.com/rohankatakam/githours/internal/errors"
	"github.com/rohankatakam/githours/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	printError(os.Stderr, err, verbose)
	stop()
	os.Exit(errors.ExitCode(err))
}

// printError reports a failed run. Verbose mode adds the error's type,
// severity, cause and context.
func printError(w io.Writer, err error, verbose bool) {
	if errors.IsType(err, errors.ErrorTypeShallowClone) {
		fmt.Fprintln(w, err.Error())
		return
	}

	var e *errors.Error
	if verbose && stderrors.As(err, &e) {
		fmt.Fprint(w, e.DetailedString())
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}

// rootOptions carries flag values and the state PersistentPreRunE builds
type rootOptions struct {
	cfgFile string
	verbose bool

	maxCommitDiff  int
	firstCommitAdd int
	since          string
	until          string
	mergeRequest   bool
	path           string
	branch         string
	emails         []string
	format         string

	now    func() time.Time
	cfg    *config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "githours",
		Short: "Estimate time spent on a git repository",
		Long: `githours estimates the hours each contributor spent on a git repository
from the timestamps of their commits.

Commits closer together than --max-commit-diff minutes belong to one coding
session. Each session also gets --first-commit-add minutes for the work done
before its first commit.`,
		Example: `  # Estimate hours of project
  githours

  # Developers commit more seldom: they might have 4h (240min) pause between commits
  githours --max-commit-diff 240

  # Developers work 5 hours before the first commit of the day
  githours --first-commit-add 300

  # Estimate hours since yesterday
  githours --since yesterday

  # Estimate hours since 2015-01-31
  githours --since 2015-01-31

  # Estimate hours on the "master" branch
  githours --branch master

  # Count commits from two addresses as one person
  githours --email old@example.com=new@example.com`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: .githours/githours.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	flags.IntVarP(&opts.maxCommitDiff, "max-commit-diff", "d", defaults.MaxCommitDiff,
		"maximum difference in minutes between commits counted to one session")
	flags.IntVarP(&opts.firstCommitAdd, "first-commit-add", "a", defaults.FirstCommitAdd,
		"how many minutes the first commit of a session adds to the total")
	flags.StringVarP(&opts.since, "since", "s", defaults.Since,
		"analyze data since date [always|yesterday|today|lastweek|thisweek|yyyy-mm-dd]")
	flags.StringVarP(&opts.until, "until", "u", defaults.Until,
		"analyze data until date [always|yesterday|today|lastweek|thisweek|yyyy-mm-dd]")
	flags.BoolVarP(&opts.mergeRequest, "merge-request", "m", defaults.MergeRequest,
		"include merge commits in the calculation")
	flags.StringVarP(&opts.path, "path", "p", defaults.Path, "git repository to analyze")
	flags.StringVarP(&opts.branch, "branch", "b", defaults.Branch,
		"analyze only the specified branch (default: all local branches)")
	flags.StringArrayVarP(&opts.emails, "email", "e", nil,
		"group a person by email address, as other@example.com=main@example.com (repeatable)")
	flags.StringVarP(&opts.format, "format", "f", defaults.Output.Format, "output format [json|yaml|table]")

	rootCmd.SetVersionTemplate(`githours {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// setup loads configuration, applies explicitly set flags on top of it and
// creates the logger
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("max-commit-diff") {
		cfg.MaxCommitDiff = o.maxCommitDiff
	}
	if flags.Changed("first-commit-add") {
		cfg.FirstCommitAdd = o.firstCommitAdd
	}
	if flags.Changed("since") {
		cfg.Since = o.since
	}
	if flags.Changed("until") {
		cfg.Until = o.until
	}
	if flags.Changed("merge-request") {
		cfg.MergeRequest = o.mergeRequest
	}
	if flags.Changed("path") {
		cfg.Path = o.path
	}
	if flags.Changed("branch") {
		cfg.Branch = o.branch
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	cfg.EmailAliases = append(cfg.EmailAliases, o.emails...)
	if o.verbose {
		cfg.Log.Level = "debug"
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.JSONFormat = cfg.Log.Format == "json"
	logCfg.Output = cmd.ErrOrStderr()

	logger, err := logging.New(logCfg)
	if err != nil {
		return errors.ValidationErrorf("log.level: %v", err)
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}
