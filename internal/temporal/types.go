package temporal

import "time"

// UnknownEmail is the grouping key for commits without an author email
const UnknownEmail = "unknown"

// TotalKey is the report key carrying the summed hours and commits
const TotalKey = "total"

// Commit represents a git commit
type Commit struct {
	SHA       string
	Author    string
	Email     string
	Timestamp time.Time
	Message   string
}

// AuthorBucket holds every commit attributed to one canonical email
type AuthorBucket struct {
	Email   string
	Commits []Commit
}

// Dates returns the timestamps of the bucket's commits in bucket order
func (b AuthorBucket) Dates() []time.Time {
	dates := make([]time.Time, 0, len(b.Commits))
	for _, commit := range b.Commits {
		dates = append(dates, commit.Timestamp)
	}
	return dates
}

// AuthorWork is the estimated work of a single contributor
type AuthorWork struct {
	Email   string  `json:"-" yaml:"-"`
	Name    string  `json:"name" yaml:"name"`
	Hours   float64 `json:"hours" yaml:"hours"`
	Commits int     `json:"commits" yaml:"commits"`
}

// Totals sums the work of every contributor in a report
type Totals struct {
	Hours   float64 `json:"hours" yaml:"hours"`
	Commits int     `json:"commits" yaml:"commits"`
}

// Report lists contributors ordered by ascending hours, followed by the totals
type Report struct {
	Authors []AuthorWork
	Total   Totals
}

// Options holds the tunables read by the estimation pipeline.
// MaxCommitDiff and FirstCommitAddition are in minutes.
type Options struct {
	MaxCommitDiff       int
	FirstCommitAddition int
	EmailAliases        map[string]string
}

// DefaultOptions returns the stock session settings
func DefaultOptions() Options {
	return Options{
		MaxCommitDiff:       2 * 60,
		FirstCommitAddition: 2 * 60,
		EmailAliases: map[string]string{
			"linus@torvalds.com": "linus@linux.com",
		},
	}
}
