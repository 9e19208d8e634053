package git

import (
	"context"
	stderrors "errors"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rohankatakam/githours/internal/errors"
	"github.com/rohankatakam/githours/internal/temporal"
	"github.com/sirupsen/logrus"
)

// MergePrefix starts the message of commits created by merges
const MergePrefix = "Merge "

// HistoryOptions selects the commits returned by Commits
type HistoryOptions struct {
	Branch        string    // local branch to read; empty reads every local branch
	Since         time.Time // keep commits strictly after Since; zero means no bound
	Until         time.Time // keep commits strictly before Until; zero means no bound
	IncludeMerges bool
}

// Commits returns the commits reachable from the selected branch heads.
// Branches sharing history yield each commit once. Heads are walked in
// branch name order so the result is stable between runs.
func (r *Repository) Commits(ctx context.Context, opts HistoryOptions) ([]temporal.Commit, error) {
	heads, err := r.heads(opts.Branch)
	if err != nil {
		return nil, err
	}

	seen := make(map[plumbing.Hash]bool)
	var commits []temporal.Commit

	for _, head := range heads {
		branch := head.Name().Short()

		iter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
		if err != nil {
			return nil, errors.HistoryErrorf(err, "failed to read history of branch %s", branch).
				WithContext("branch", branch).
				WithContext("head", head.Hash().String())
		}

		before := len(commits)
		err = iter.ForEach(func(c *object.Commit) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if seen[c.Hash] {
				return nil
			}
			seen[c.Hash] = true

			if !opts.IncludeMerges && IsMerge(c.Message) {
				return nil
			}
			if !inWindow(c.Committer.When, opts.Since, opts.Until) {
				return nil
			}

			commits = append(commits, toCommit(c))
			return nil
		})
		iter.Close()

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, errors.HistoryErrorf(err, "failed to read history of branch %s", branch).
				WithContext("branch", branch)
		}

		r.logger.WithFields(logrus.Fields{
			"branch":  branch,
			"commits": len(commits) - before,
		}).Debug("read branch history")
	}

	r.logger.WithFields(logrus.Fields{
		"branches": len(heads),
		"commits":  len(commits),
	}).Debug("history read complete")

	return commits, nil
}

// IsMerge reports whether a commit message was written by a merge
func IsMerge(message string) bool {
	return strings.HasPrefix(message, MergePrefix)
}

func (r *Repository) heads(branch string) ([]*plumbing.Reference, error) {
	if branch != "" {
		ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
		if err != nil {
			if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
				return nil, errors.RepositoryErrorf(nil, "branch %q not found", branch).WithContext("branch", branch)
			}
			return nil, errors.RepositoryErrorf(err, "failed to resolve branch %q", branch).WithContext("branch", branch)
		}
		return []*plumbing.Reference{ref}, nil
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, errors.RepositoryError(err, "failed to list branches")
	}
	defer iter.Close()

	var heads []*plumbing.Reference
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		heads = append(heads, ref)
		return nil
	})
	if err != nil {
		return nil, errors.RepositoryError(err, "failed to list branches")
	}

	sort.Slice(heads, func(i, j int) bool {
		return heads[i].Name() < heads[j].Name()
	})

	return heads, nil
}

func inWindow(when, since, until time.Time) bool {
	if !since.IsZero() && !when.After(since) {
		return false
	}
	if !until.IsZero() && !when.Before(until) {
		return false
	}
	return true
}

func toCommit(c *object.Commit) temporal.Commit {
	return temporal.Commit{
		SHA:       c.Hash.String(),
		Author:    c.Author.Name,
		Email:     c.Author.Email,
		Timestamp: c.Committer.When,
		Message:   c.Message,
	}
}
