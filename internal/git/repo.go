package git

import (
	stderrors "errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/rohankatakam/githours/internal/errors"
	"github.com/sirupsen/logrus"
)

// Repository is a local git repository opened for history reads
type Repository struct {
	repo   *gogit.Repository
	path   string
	logger logrus.FieldLogger
}

// Open opens the repository containing path. Parent directories are searched
// for a .git directory, like the git command does.
func Open(path string, logger logrus.FieldLogger) (*Repository, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, errors.RepositoryErrorf(nil, "not a git repository: %s", path).WithContext("path", path)
		}
		return nil, errors.RepositoryErrorf(err, "failed to open repository %s", path).WithContext("path", path)
	}

	logger.WithField("path", path).Debug("opened repository")

	return &Repository{
		repo:   repo,
		path:   path,
		logger: logger,
	}, nil
}

// Path returns the path the repository was opened with
func (r *Repository) Path() string {
	return r.path
}

// IsShallow reports whether the repository is a shallow clone.
// History of a shallow clone is truncated, so estimates would be wrong.
func (r *Repository) IsShallow() (bool, error) {
	shallow, err := r.repo.Storer.Shallow()
	if err != nil {
		return false, errors.RepositoryError(err, "failed to read shallow commits")
	}
	return len(shallow) > 0, nil
}
