package temporal

// GroupByAuthor partitions commits by canonical author email.
// Buckets are returned in the order their email was first seen and commits
// keep their input order inside a bucket.
func GroupByAuthor(commits []Commit, resolver AliasResolver) []AuthorBucket {
	index := make(map[string]int)
	var buckets []AuthorBucket

	for _, commit := range commits {
		email := resolver.Resolve(commit.Email)

		if i, exists := index[email]; exists {
			buckets[i].Commits = append(buckets[i].Commits, commit)
			continue
		}

		index[email] = len(buckets)
		buckets = append(buckets, AuthorBucket{
			Email:   email,
			Commits: []Commit{commit},
		})
	}

	return buckets
}

// SummarizeAuthor builds the work record of one author bucket.
// The name comes from the bucket's first commit.
func SummarizeAuthor(bucket AuthorBucket, estimator Estimator) AuthorWork {
	work := AuthorWork{
		Email:   bucket.Email,
		Hours:   estimator.Estimate(bucket.Dates()),
		Commits: len(bucket.Commits),
	}
	if len(bucket.Commits) > 0 {
		work.Name = bucket.Commits[0].Author
	}
	return work
}

// SummarizeAuthors summarizes every bucket, keeping bucket order
func SummarizeAuthors(buckets []AuthorBucket, estimator Estimator) []AuthorWork {
	works := make([]AuthorWork, 0, len(buckets))
	for _, bucket := range buckets {
		works = append(works, SummarizeAuthor(bucket, estimator))
	}
	return works
}
