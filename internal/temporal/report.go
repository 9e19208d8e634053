package temporal

import "sort"

// BuildReport orders author work by ascending hours and totals it.
// Authors with equal hours are ordered by ascending commit count, then keep
// their relative order.
func BuildReport(works []AuthorWork) *Report {
	authors := make([]AuthorWork, len(works))
	copy(authors, works)

	sort.SliceStable(authors, func(i, j int) bool {
		if authors[i].Hours != authors[j].Hours {
			return authors[i].Hours < authors[j].Hours
		}
		return authors[i].Commits < authors[j].Commits
	})

	report := &Report{Authors: authors}
	for _, author := range authors {
		report.Total.Hours += author.Hours
		report.Total.Commits += author.Commits
	}

	return report
}

// Analyze runs the whole estimation pipeline over a list of commits
func Analyze(commits []Commit, opts Options) *Report {
	resolver := NewAliasResolver(opts.EmailAliases)
	estimator := NewEstimator(opts)

	buckets := GroupByAuthor(commits, resolver)
	return BuildReport(SummarizeAuthors(buckets, estimator))
}
