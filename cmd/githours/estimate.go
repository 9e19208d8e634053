package main

import (
	"context"
	"io"

	"github.com/rohankatakam/githours/internal/errors"
	"github.com/rohankatakam/githours/internal/git"
	"github.com/rohankatakam/githours/internal/output"
	"github.com/rohankatakam/githours/internal/temporal"
	"github.com/sirupsen/logrus"
)

const shallowCloneMessage = "Cannot analyze shallow copies!\nPlease run git fetch --unshallow before continuing!"

// runEstimate reads the repository history and writes the hours report to out
func runEstimate(ctx context.Context, opts *rootOptions, out io.Writer) error {
	cfg := opts.cfg
	logger := opts.logger
	now := opts.now()

	result := cfg.Validate(now)
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if err := result.Err(); err != nil {
		return err
	}

	estimateOpts, err := cfg.Options()
	if err != nil {
		return err
	}
	since, until, err := cfg.Window(now)
	if err != nil {
		return err
	}
	formatter, err := output.NewFormatter(cfg.Output.Format)
	if err != nil {
		return err
	}

	repo, err := git.Open(cfg.Path, logger)
	if err != nil {
		return err
	}

	shallow, err := repo.IsShallow()
	if err != nil {
		return err
	}
	if shallow {
		return errors.ShallowCloneError(shallowCloneMessage)
	}

	commits, err := repo.Commits(ctx, git.HistoryOptions{
		Branch:        cfg.Branch,
		Since:         since,
		Until:         until,
		IncludeMerges: cfg.MergeRequest,
	})
	if err != nil {
		return err
	}

	report := temporal.Analyze(commits, estimateOpts)

	logger.WithFields(logrus.Fields{
		"commits": report.Total.Commits,
		"authors": len(report.Authors),
		"hours":   report.Total.Hours,
	}).Info("estimate complete")

	return formatter.Format(report, out)
}
